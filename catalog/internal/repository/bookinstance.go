package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

type bookInstanceRow struct {
	ID        string       `db:"id"`
	BookID    string       `db:"book_id"`
	Imprint   string       `db:"imprint"`
	Status    model.Status `db:"status"`
	DueBack   time.Time    `db:"due_back"`
	BookTitle string       `db:"book_title"`
}

func (r bookInstanceRow) toModel() model.BookInstance {
	return model.BookInstance{
		ID:      r.ID,
		BookID:  r.BookID,
		Book:    model.Book{ID: r.BookID, Title: r.BookTitle},
		Imprint: r.Imprint,
		Status:  r.Status,
		DueBack: r.DueBack,
	}
}

func instancesFromRows(rows []bookInstanceRow) []model.BookInstance {
	items := make([]model.BookInstance, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items
}

func selectBookInstances() sq.SelectBuilder {
	return qb.Select("bi.id", "bi.book_id", "bi.imprint", "bi.status", "bi.due_back", "b.title as book_title").
		From(bookInstancesTableName + " bi").
		Join(booksTableName + " b on b.id = bi.book_id")
}

func (r *repository) ListBookInstances(ctx context.Context, q model.ListQuery) (model.List[model.BookInstance], error) {
	total, err := r.Count(ctx, model.EntityBookInstance)
	if err != nil {
		return model.List[model.BookInstance]{}, err
	}
	rows, err := selectAll[bookInstanceRow](ctx, r.db,
		paginate(selectBookInstances(), q, bookInstanceSorts, "bi.created_at", "bi.id"))
	if err != nil {
		return model.List[model.BookInstance]{}, mapErr(err, "ListBookInstances", nil)
	}
	return model.List[model.BookInstance]{
		Paging: model.NewPaging(q.Page, model.PageSize, total),
		Items:  instancesFromRows(rows),
	}, nil
}

func (r *repository) GetBookInstance(ctx context.Context, id string) (model.BookInstance, error) {
	row, err := selectOne[bookInstanceRow](ctx, r.db, selectBookInstances().Where(sq.Eq{"bi.id": id}).Limit(1))
	if err != nil {
		return model.BookInstance{}, mapErr(err, "GetBookInstance", nil)
	}
	return row.toModel(), nil
}

func (r *repository) ListBookInstancesByBook(ctx context.Context, bookID string) ([]model.BookInstance, error) {
	rows, err := selectAll[bookInstanceRow](ctx, r.db, selectBookInstances().
		Where(sq.Eq{"bi.book_id": bookID}).
		OrderBy("bi.created_at", "bi.id"))
	if err != nil {
		return nil, mapErr(err, "ListBookInstancesByBook", nil)
	}
	return instancesFromRows(rows), nil
}

func (r *repository) CreateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error) {
	bi.ID = uuid.NewString()
	err := exec(ctx, r.db, qb.Insert(bookInstancesTableName).
		Columns("id", "book_id", "imprint", "status", "due_back").
		Values(bi.ID, bi.BookID, bi.Imprint, string(bi.Status), bi.DueBack))
	if err != nil {
		return model.BookInstance{}, mapErr(err, "CreateBookInstance", errs.ErrInvalidReference)
	}
	return bi, nil
}

func (r *repository) UpdateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error) {
	err := exec(ctx, r.db, qb.Update(bookInstancesTableName).
		Set("book_id", bi.BookID).
		Set("imprint", bi.Imprint).
		Set("status", string(bi.Status)).
		Set("due_back", bi.DueBack).
		Where(sq.Eq{"id": bi.ID}))
	if err != nil {
		return model.BookInstance{}, mapErr(err, "UpdateBookInstance", errs.ErrInvalidReference)
	}
	return bi, nil
}

func (r *repository) DeleteBookInstance(ctx context.Context, id string) error {
	err := exec(ctx, r.db, qb.Delete(bookInstancesTableName).Where(sq.Eq{"id": id}))
	return mapErr(err, "DeleteBookInstance", nil)
}
