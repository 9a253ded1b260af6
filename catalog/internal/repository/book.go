package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

type bookRow struct {
	ID               string `db:"id"`
	Title            string `db:"title"`
	Summary          string `db:"summary"`
	ISBN             string `db:"isbn"`
	AuthorID         string `db:"author_id"`
	AuthorFirstName  string `db:"author_first_name"`
	AuthorFamilyName string `db:"author_family_name"`
}

func (r bookRow) toModel() model.Book {
	return model.Book{
		ID:       r.ID,
		Title:    r.Title,
		Summary:  r.Summary,
		ISBN:     r.ISBN,
		AuthorID: r.AuthorID,
		Author: model.Author{
			ID:         r.AuthorID,
			FirstName:  r.AuthorFirstName,
			FamilyName: r.AuthorFamilyName,
		},
	}
}

func booksFromRows(rows []bookRow) []model.Book {
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toModel())
	}
	return books
}

func selectBooks() sq.SelectBuilder {
	return qb.Select("b.id", "b.title", "b.summary", "b.isbn", "b.author_id",
		"a.first_name as author_first_name", "a.family_name as author_family_name").
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id")
}

func (r *repository) ListBooks(ctx context.Context, q model.ListQuery) (model.List[model.Book], error) {
	total, err := r.Count(ctx, model.EntityBook)
	if err != nil {
		return model.List[model.Book]{}, err
	}
	b := paginate(selectBooks(), q, bookSorts, "b.created_at", "b.id")
	rows, err := selectAll[bookRow](ctx, r.db, b)
	if err != nil {
		return model.List[model.Book]{}, mapErr(err, "ListBooks", nil)
	}
	r.log.Debug("ListBooks", zap.Int("page", q.Page), zap.String("sort", q.Sort), zap.Int("total", total))

	return model.List[model.Book]{
		Paging: model.NewPaging(q.Page, model.PageSize, total),
		Items:  booksFromRows(rows),
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	row, err := selectOne[bookRow](ctx, r.db, selectBooks().Where(sq.Eq{"b.id": id}).Limit(1))
	if err != nil {
		return model.Book{}, mapErr(err, "GetBook", nil)
	}
	book := row.toModel()
	for _, kind := range model.TagKinds {
		tags, err := r.tagsByBook(ctx, kind, id)
		if err != nil {
			return model.Book{}, err
		}
		book.SetTags(kind, tags)
	}
	return book, nil
}

func (r *repository) AllBooks(ctx context.Context) ([]model.Book, error) {
	rows, err := selectAll[bookRow](ctx, r.db, selectBooks().OrderBy("b.title", "b.id"))
	if err != nil {
		return nil, mapErr(err, "AllBooks", nil)
	}
	return booksFromRows(rows), nil
}

func (r *repository) ListBooksByAuthor(ctx context.Context, authorID string) ([]model.Book, error) {
	rows, err := selectAll[bookRow](ctx, r.db, selectBooks().
		Where(sq.Eq{"b.author_id": authorID}).
		OrderBy("b.title", "b.id"))
	if err != nil {
		return nil, mapErr(err, "ListBooksByAuthor", nil)
	}
	return booksFromRows(rows), nil
}

func (r *repository) ListBooksByTag(ctx context.Context, kind model.Entity, tagID string) ([]model.Book, error) {
	tt, err := tagTables(kind)
	if err != nil {
		return nil, err
	}
	rows, err := selectAll[bookRow](ctx, r.db, selectBooks().
		Join(tt.join+" bt on bt.book_id = b.id").
		Where(sq.Eq{"bt." + tt.column: tagID}).
		OrderBy("b.title", "b.id"))
	if err != nil {
		return nil, mapErr(err, "ListBooksByTag", nil)
	}
	return booksFromRows(rows), nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	book.ID = uuid.NewString()
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query, args, err := qb.Insert(booksTableName).
			Columns("id", "title", "summary", "isbn", "author_id").
			Values(book.ID, book.Title, book.Summary, book.ISBN, book.AuthorID).
			ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		return r.writeBookTags(ctx, tx, book, insertRefs)
	})
	if err != nil {
		r.log.Error("CreateBook", zap.Error(err), zap.String("id", book.ID))
		return model.Book{}, mapErr(err, "CreateBook", errs.ErrInvalidReference)
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := exec(ctx, tx, qb.Update(booksTableName).
			Set("title", book.Title).
			Set("summary", book.Summary).
			Set("isbn", book.ISBN).
			Set("author_id", book.AuthorID).
			Where(sq.Eq{"id": book.ID}))
		if err != nil {
			return err
		}
		return r.writeBookTags(ctx, tx, book, replaceRefs)
	})
	if err != nil {
		return model.Book{}, mapErr(err, "UpdateBook", errs.ErrInvalidReference)
	}
	return book, nil
}

type refWriter func(ctx context.Context, db querier, table, ownerCol, ownerID, refCol string, refIDs []string) error

func (r *repository) writeBookTags(ctx context.Context, tx pgx.Tx, book model.Book, write refWriter) error {
	for _, kind := range model.TagKinds {
		tt, err := tagTables(kind)
		if err != nil {
			return err
		}
		if err = write(ctx, tx, tt.join, "book_id", book.ID, tt.column, model.TagIDs(book.Tags(kind))); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	err := exec(ctx, r.db, qb.Delete(booksTableName).Where(sq.Eq{"id": id}))
	return mapErr(err, "DeleteBook", errs.ErrHasDependents)
}
