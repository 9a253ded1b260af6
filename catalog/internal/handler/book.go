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

var bookSorts = []view.SortKey{
	{Key: "title", Label: "Title"},
	{Key: "author", Label: "Author"},
	{Key: "isbn", Label: "ISBN"},
}

func (h *Handler) BookList(c echo.Context) error {
	list, err := h.svc.ListBooks(c.Request().Context(), listQuery(c))
	if err != nil {
		return fail(model.EntityBook, err)
	}
	return h.render(c, "book_list", "Book List",
		view.NewList(model.EntityBook, list, c.QueryParams(), bookSorts), nil)
}

func (h *Handler) BookDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityBook, err)
	}
	data, err := h.loadBook(c.Request().Context(), id)
	if err != nil {
		return fail(model.EntityBook, err)
	}
	return h.render(c, "book_detail", data.Book.Title, data, nil)
}

// loadBook fetches a book together with its copies.
func (h *Handler) loadBook(ctx context.Context, id string) (view.BookDetail, error) {
	var data view.BookDetail
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		data.Book, err = h.svc.GetBook(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		data.Instances, err = h.svc.ListBookInstancesByBook(ctx, id)
		return err
	})
	return data, gg.Wait()
}

// bookRefs are the option lists of the book form.
type bookRefs struct {
	authors []model.Author
	tags    [][]model.Tag
}

func (h *Handler) loadBookRefs(ctx context.Context, gg *errgroup.Group) *bookRefs {
	refs := &bookRefs{tags: make([][]model.Tag, len(model.TagKinds))}
	gg.Go(func() (err error) {
		refs.authors, err = h.svc.AllAuthors(ctx)
		return err
	})
	for i, kind := range model.TagKinds {
		i, kind := i, kind
		gg.Go(func() (err error) {
			refs.tags[i], err = h.svc.AllTags(ctx, kind)
			return err
		})
	}
	return refs
}

func (r *bookRefs) form(f bookForm) view.BookForm {
	out := view.BookForm{
		Title:   f.Title,
		Summary: f.Summary,
		ISBN:    f.ISBN,
		Authors: view.Options(r.authors, view.AuthorOption, []string{f.Author}),
	}
	for i, kind := range model.TagKinds {
		opts := view.Options(r.tags[i], view.TagOption, f.tagIDs(kind))
		switch kind {
		case model.EntityGenre:
			out.Genres = opts
		case model.EntityFormato:
			out.Formatos = opts
		case model.EntityPrize:
			out.Prizes = opts
		}
	}
	return out
}

func (h *Handler) renderBookForm(c echo.Context, title string, f bookForm, ferrs []validate.FieldError) error {
	gg, ctx := errgroup.WithContext(c.Request().Context())
	refs := h.loadBookRefs(ctx, gg)
	if err := gg.Wait(); err != nil {
		return fail(model.EntityBook, err)
	}
	return h.render(c, "book_form", title, refs.form(f), ferrs)
}

func (h *Handler) BookCreateGet(c echo.Context) error {
	return h.renderBookForm(c, "Create Book", bookForm{}, nil)
}

func (h *Handler) BookCreatePost(c echo.Context) error {
	var f bookForm
	ferrs, err := bindForm(c, &f, bookMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.renderBookForm(c, "Create Book", f, ferrs)
	}
	book, err := h.svc.CreateBook(c.Request().Context(), f.toModel(""))
	if err != nil {
		return fail(model.EntityBook, err)
	}
	return c.Redirect(http.StatusFound, book.URL())
}

func (h *Handler) BookUpdateGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityBook, err)
	}
	var book model.Book
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() (err error) {
		book, err = h.svc.GetBook(ctx, id)
		return err
	})
	refs := h.loadBookRefs(ctx, gg)
	if err = gg.Wait(); err != nil {
		return fail(model.EntityBook, err)
	}
	return h.render(c, "book_form", "Update Book", refs.form(bookFormOf(book)), nil)
}

func (h *Handler) BookUpdatePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityBook, err)
	}
	var f bookForm
	ferrs, err := bindForm(c, &f, bookMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.renderBookForm(c, "Update Book", f, ferrs)
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), f.toModel(id))
	if err != nil {
		return fail(model.EntityBook, err)
	}
	return c.Redirect(http.StatusFound, book.URL())
}

func (h *Handler) BookDeleteGet(c echo.Context) error {
	return h.deleteGet(c, model.EntityBook, h.bookDeletion)
}

func (h *Handler) BookDeletePost(c echo.Context) error {
	return h.deletePost(c, model.EntityBook, h.bookDeletion, h.svc.DeleteBook)
}

func (h *Handler) bookDeletion(ctx context.Context, id string) (any, bool, error) {
	data, err := h.loadBook(ctx, id)
	return data, len(data.Instances) > 0, err
}
