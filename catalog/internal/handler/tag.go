package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/view"
)

var tagSorts = []view.SortKey{
	{Key: "name", Label: "Name"},
}

// The tag controllers serve genres, formatos and prizes; each route is bound
// to one kind.

func (h *Handler) TagList(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := h.svc.ListTags(c.Request().Context(), kind, listQuery(c))
		if err != nil {
			return fail(kind, err)
		}
		return h.render(c, "tag_list", kind.Label()+" List",
			view.NewList(kind, list, c.QueryParams(), tagSorts), nil)
	}
}

func (h *Handler) TagDetail(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return fail(kind, err)
		}
		data, err := h.loadTag(c.Request().Context(), kind, id)
		if err != nil {
			return fail(kind, err)
		}
		return h.render(c, "tag_detail", kind.Label()+" Detail", data, nil)
	}
}

// loadTag fetches a tag together with the books referencing it.
func (h *Handler) loadTag(ctx context.Context, kind model.Entity, id string) (view.TagDetail, error) {
	var data view.TagDetail
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		data.Tag, err = h.svc.GetTag(ctx, kind, id)
		return err
	})
	gg.Go(func() (err error) {
		data.Books, err = h.svc.ListBooksByTag(ctx, kind, id)
		return err
	})
	return data, gg.Wait()
}

func (h *Handler) TagCreateGet(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.render(c, "tag_form", "Create "+kind.Label(), view.TagForm{Kind: kind}, nil)
	}
}

// TagCreatePost redirects to an existing record of the same kind and name
// instead of creating a duplicate.
func (h *Handler) TagCreatePost(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		var f tagForm
		ferrs, err := bindForm(c, &f, tagMessages(kind))
		if err != nil {
			return err
		}
		if len(ferrs) > 0 {
			return h.render(c, "tag_form", "Create "+kind.Label(), view.TagForm{Kind: kind, Name: f.Name}, ferrs)
		}
		ctx := c.Request().Context()
		existing, err := h.svc.FindTagByName(ctx, kind, f.Name)
		switch {
		case err == nil:
			return c.Redirect(http.StatusFound, existing.URL())
		case !errors.Is(err, errs.ErrNotFound):
			return fail(kind, err)
		}
		tag, err := h.svc.CreateTag(ctx, model.Tag{Kind: kind, Name: f.Name})
		if err != nil {
			return fail(kind, err)
		}
		return c.Redirect(http.StatusFound, tag.URL())
	}
}

func (h *Handler) TagUpdateGet(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return fail(kind, err)
		}
		tag, err := h.svc.GetTag(c.Request().Context(), kind, id)
		if err != nil {
			return fail(kind, err)
		}
		return h.render(c, "tag_form", "Update "+kind.Label(), view.TagForm{Kind: kind, Name: tag.Name}, nil)
	}
}

func (h *Handler) TagUpdatePost(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return fail(kind, err)
		}
		var f tagForm
		ferrs, err := bindForm(c, &f, tagMessages(kind))
		if err != nil {
			return err
		}
		if len(ferrs) > 0 {
			return h.render(c, "tag_form", "Update "+kind.Label(), view.TagForm{Kind: kind, Name: f.Name}, ferrs)
		}
		tag, err := h.svc.UpdateTag(c.Request().Context(), model.Tag{ID: id, Kind: kind, Name: f.Name})
		if err != nil {
			return fail(kind, err)
		}
		return c.Redirect(http.StatusFound, tag.URL())
	}
}

func (h *Handler) TagDeleteGet(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.deleteGet(c, kind, h.tagDeletion(kind))
	}
}

func (h *Handler) TagDeletePost(kind model.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.deletePost(c, kind, h.tagDeletion(kind), func(ctx context.Context, id string) error {
			return h.svc.DeleteTag(ctx, kind, id)
		})
	}
}

func (h *Handler) tagDeletion(kind model.Entity) deletion {
	return func(ctx context.Context, id string) (any, bool, error) {
		data, err := h.loadTag(ctx, kind, id)
		return data, len(data.Books) > 0, err
	}
}
