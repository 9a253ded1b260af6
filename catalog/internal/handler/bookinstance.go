package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/view"
	"github.com/Astemirdum/local-library/pkg/validate"
)

var bookInstanceSorts = []view.SortKey{
	{Key: "book", Label: "Book"},
	{Key: "imprint", Label: "Imprint"},
	{Key: "status", Label: "Status"},
	{Key: "due_back", Label: "Due back"},
}

func (h *Handler) BookInstanceList(c echo.Context) error {
	list, err := h.svc.ListBookInstances(c.Request().Context(), listQuery(c))
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	return h.render(c, "bookinstance_list", "Book Instance List",
		view.NewList(model.EntityBookInstance, list, c.QueryParams(), bookInstanceSorts), nil)
}

func (h *Handler) BookInstanceDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	bi, err := h.svc.GetBookInstance(c.Request().Context(), id)
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	return h.render(c, "bookinstance_detail", "Copy: "+bi.Book.Title, bi, nil)
}

func bookInstanceFormView(f bookInstanceForm, books []model.Book) view.BookInstanceForm {
	return view.BookInstanceForm{
		Imprint:  f.Imprint,
		DueBack:  f.DueBack,
		Books:    view.Options(books, view.BookOption, []string{f.Book}),
		Statuses: view.Options(model.Statuses, view.StatusOption, []string{f.Status}),
	}
}

func (h *Handler) renderBookInstanceForm(c echo.Context, title string, f bookInstanceForm, ferrs []validate.FieldError) error {
	books, err := h.svc.AllBooks(c.Request().Context())
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	return h.render(c, "bookinstance_form", title, bookInstanceFormView(f, books), ferrs)
}

func (h *Handler) BookInstanceCreateGet(c echo.Context) error {
	return h.renderBookInstanceForm(c, "Create BookInstance",
		bookInstanceForm{Status: string(model.StatusMaintenance)}, nil)
}

func (h *Handler) BookInstanceCreatePost(c echo.Context) error {
	var f bookInstanceForm
	ferrs, err := bindForm(c, &f, bookInstanceMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.renderBookInstanceForm(c, "Create BookInstance", f, ferrs)
	}
	bi, err := h.svc.CreateBookInstance(c.Request().Context(), f.toModel("", today()))
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	return c.Redirect(http.StatusFound, bi.URL())
}

func (h *Handler) BookInstanceUpdateGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	var (
		bi    model.BookInstance
		books []model.Book
	)
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() (err error) {
		bi, err = h.svc.GetBookInstance(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		books, err = h.svc.AllBooks(ctx)
		return err
	})
	if err = gg.Wait(); err != nil {
		return fail(model.EntityBookInstance, err)
	}
	return h.render(c, "bookinstance_form", "Update BookInstance",
		bookInstanceFormView(bookInstanceFormOf(bi), books), nil)
}

func (h *Handler) BookInstanceUpdatePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	var f bookInstanceForm
	ferrs, err := bindForm(c, &f, bookInstanceMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.renderBookInstanceForm(c, "Update BookInstance", f, ferrs)
	}
	bi, err := h.svc.UpdateBookInstance(c.Request().Context(), f.toModel(id, today()))
	if err != nil {
		return fail(model.EntityBookInstance, err)
	}
	return c.Redirect(http.StatusFound, bi.URL())
}

func (h *Handler) BookInstanceDeleteGet(c echo.Context) error {
	return h.deleteGet(c, model.EntityBookInstance, h.bookInstanceDeletion)
}

func (h *Handler) BookInstanceDeletePost(c echo.Context) error {
	return h.deletePost(c, model.EntityBookInstance, h.bookInstanceDeletion, h.svc.DeleteBookInstance)
}

// copies have no dependents
func (h *Handler) bookInstanceDeletion(ctx context.Context, id string) (any, bool, error) {
	bi, err := h.svc.GetBookInstance(ctx, id)
	return bi, false, err
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
