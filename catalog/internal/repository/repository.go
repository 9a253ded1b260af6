package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Astemirdum/local-library/catalog/internal/model"
)

type Repository interface {
	Count(ctx context.Context, entity model.Entity) (int, error)
	CountBookInstancesByStatus(ctx context.Context, status model.Status) (int, error)

	ListBooks(ctx context.Context, q model.ListQuery) (model.List[model.Book], error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	AllBooks(ctx context.Context) ([]model.Book, error)
	ListBooksByAuthor(ctx context.Context, authorID string) ([]model.Book, error)
	ListBooksByTag(ctx context.Context, kind model.Entity, tagID string) ([]model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error

	ListAuthors(ctx context.Context, q model.ListQuery) (model.List[model.Author], error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	AllAuthors(ctx context.Context) ([]model.Author, error)
	ListAuthorsByCountry(ctx context.Context, countryID string) ([]model.Author, error)
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, id string) error

	ListBookInstances(ctx context.Context, q model.ListQuery) (model.List[model.BookInstance], error)
	GetBookInstance(ctx context.Context, id string) (model.BookInstance, error)
	ListBookInstancesByBook(ctx context.Context, bookID string) ([]model.BookInstance, error)
	CreateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, bi model.BookInstance) (model.BookInstance, error)
	DeleteBookInstance(ctx context.Context, id string) error

	ListCountries(ctx context.Context, q model.ListQuery) (model.List[model.Country], error)
	GetCountry(ctx context.Context, id string) (model.Country, error)
	AllCountries(ctx context.Context) ([]model.Country, error)
	CreateCountry(ctx context.Context, country model.Country) (model.Country, error)
	UpdateCountry(ctx context.Context, country model.Country) (model.Country, error)
	DeleteCountry(ctx context.Context, id string) error

	ListTags(ctx context.Context, kind model.Entity, q model.ListQuery) (model.List[model.Tag], error)
	GetTag(ctx context.Context, kind model.Entity, id string) (model.Tag, error)
	AllTags(ctx context.Context, kind model.Entity) ([]model.Tag, error)
	FindTagByName(ctx context.Context, kind model.Entity, name string) (model.Tag, error)
	CreateTag(ctx context.Context, tag model.Tag) (model.Tag, error)
	UpdateTag(ctx context.Context, tag model.Tag) (model.Tag, error)
	DeleteTag(ctx context.Context, kind model.Entity, id string) error
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName           = `books`
	authorsTableName         = `authors`
	authorCountriesTableName = `author_countries`
	bookInstancesTableName   = `book_instances`
	countriesTableName       = `countries`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) Count(ctx context.Context, entity model.Entity) (int, error) {
	table, err := tableName(entity)
	if err != nil {
		return 0, err
	}
	return r.count(ctx, qb.Select("count(*)").From(table))
}

func (r *repository) CountBookInstancesByStatus(ctx context.Context, status model.Status) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(bookInstancesTableName).
		Where(sq.Eq{"status": string(status)}))
}

func (r *repository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapErr(err, "count", nil)
	}
	return n, nil
}

func selectAll[T any](ctx context.Context, db querier, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func selectOne[T any](ctx context.Context, db querier, b sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
}

// exec runs a write and reports pgx.ErrNoRows when nothing was touched.
func exec(ctx context.Context, db querier, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// replaceRefs rewrites the join rows owned by ownerID.
func replaceRefs(ctx context.Context, db querier, table, ownerCol, ownerID, refCol string, refIDs []string) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{ownerCol: ownerID}).ToSql()
	if err != nil {
		return err
	}
	if _, err = db.Exec(ctx, query, args...); err != nil {
		return err
	}
	return insertRefs(ctx, db, table, ownerCol, ownerID, refCol, refIDs)
}

func insertRefs(ctx context.Context, db querier, table, ownerCol, ownerID, refCol string, refIDs []string) error {
	if len(refIDs) == 0 {
		return nil
	}
	ins := qb.Insert(table).Columns(ownerCol, refCol)
	for _, id := range refIDs {
		ins = ins.Values(ownerID, id)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, query, args...)
	return err
}
