package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/view"
	"github.com/Astemirdum/local-library/pkg/validate"
)

var authorSorts = []view.SortKey{
	{Key: "first_name", Label: "First name"},
	{Key: "family_name", Label: "Family name"},
	{Key: "date_of_birth", Label: "Lifespan"},
}

func (h *Handler) AuthorList(c echo.Context) error {
	list, err := h.svc.ListAuthors(c.Request().Context(), listQuery(c))
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	return h.render(c, "author_list", "Author List",
		view.NewList(model.EntityAuthor, list, c.QueryParams(), authorSorts), nil)
}

func (h *Handler) AuthorDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	data, err := h.loadAuthor(c.Request().Context(), id)
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	return h.render(c, "author_detail", "Author Detail", data, nil)
}

// loadAuthor fetches an author together with the books written by them.
func (h *Handler) loadAuthor(ctx context.Context, id string) (view.AuthorDetail, error) {
	var data view.AuthorDetail
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		data.Author, err = h.svc.GetAuthor(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		data.Books, err = h.svc.ListBooksByAuthor(ctx, id)
		return err
	})
	return data, gg.Wait()
}

func authorFormView(f authorForm, countries []model.Country) view.AuthorForm {
	return view.AuthorForm{
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: f.DateOfBirth,
		DateOfDeath: f.DateOfDeath,
		Countries:   view.Options(countries, view.CountryOption, f.Countries),
	}
}

func (h *Handler) renderAuthorForm(c echo.Context, title string, f authorForm, ferrs []validate.FieldError) error {
	countries, err := h.svc.AllCountries(c.Request().Context())
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	return h.render(c, "author_form", title, authorFormView(f, countries), ferrs)
}

func (h *Handler) AuthorCreateGet(c echo.Context) error {
	return h.renderAuthorForm(c, "Create Author", authorForm{}, nil)
}

func (h *Handler) AuthorCreatePost(c echo.Context) error {
	var f authorForm
	ferrs, err := bindForm(c, &f, authorMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.renderAuthorForm(c, "Create Author", f, ferrs)
	}
	author, err := h.svc.CreateAuthor(c.Request().Context(), f.toModel(""))
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	return c.Redirect(http.StatusFound, author.URL())
}

func (h *Handler) AuthorUpdateGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	var (
		author    model.Author
		countries []model.Country
	)
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() (err error) {
		author, err = h.svc.GetAuthor(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		countries, err = h.svc.AllCountries(ctx)
		return err
	})
	if err = gg.Wait(); err != nil {
		return fail(model.EntityAuthor, err)
	}
	return h.render(c, "author_form", "Update Author", authorFormView(authorFormOf(author), countries), nil)
}

func (h *Handler) AuthorUpdatePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	var f authorForm
	ferrs, err := bindForm(c, &f, authorMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.renderAuthorForm(c, "Update Author", f, ferrs)
	}
	author, err := h.svc.UpdateAuthor(c.Request().Context(), f.toModel(id))
	if err != nil {
		return fail(model.EntityAuthor, err)
	}
	return c.Redirect(http.StatusFound, author.URL())
}

func (h *Handler) AuthorDeleteGet(c echo.Context) error {
	return h.deleteGet(c, model.EntityAuthor, h.authorDeletion)
}

func (h *Handler) AuthorDeletePost(c echo.Context) error {
	return h.deletePost(c, model.EntityAuthor, h.authorDeletion, h.svc.DeleteAuthor)
}

func (h *Handler) authorDeletion(ctx context.Context, id string) (any, bool, error) {
	data, err := h.loadAuthor(ctx, id)
	return data, len(data.Books) > 0, err
}
