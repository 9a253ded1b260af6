package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

var tables = map[model.Entity]string{
	model.EntityBook:         booksTableName,
	model.EntityAuthor:       authorsTableName,
	model.EntityBookInstance: bookInstancesTableName,
	model.EntityCountry:      countriesTableName,
	model.EntityGenre:        "genres",
	model.EntityFormato:      "formatos",
	model.EntityPrize:        "prizes",
}

func tableName(entity model.Entity) (string, error) {
	t, ok := tables[entity]
	if !ok {
		return "", errors.Wrap(errs.ErrUnknownEntityKind, string(entity))
	}
	return t, nil
}

type tagTable struct {
	table string
	// join table between books and the tag table
	join string
	// tag column in join
	column string
}

func tagTables(kind model.Entity) (tagTable, error) {
	if !kind.IsTag() {
		return tagTable{}, errors.Wrap(errs.ErrUnknownEntityKind, string(kind))
	}
	return tagTable{
		table:  tables[kind],
		join:   "book_" + kind.Plural(),
		column: string(kind) + "_id",
	}, nil
}

// sortColumns maps the sort keys accepted from the query string to ORDER BY
// expressions.
type sortColumns map[string]string

var (
	bookSorts = sortColumns{
		"title":  "b.title",
		"author": "a.family_name, a.first_name",
		"isbn":   "b.isbn",
	}
	authorSorts = sortColumns{
		"first_name":    "first_name",
		"family_name":   "family_name",
		"date_of_birth": "date_of_birth",
	}
	bookInstanceSorts = sortColumns{
		"book":     "b.title",
		"imprint":  "bi.imprint",
		"status":   "bi.status",
		"due_back": "bi.due_back",
	}
	countrySorts = sortColumns{
		"name":      "name",
		"continent": "continent",
	}
	tagSorts = sortColumns{
		"name": "name",
	}
)

// orderBy resolves key, an unknown or empty key yields fallback.
func (s sortColumns) orderBy(key, fallback string) string {
	if col, ok := s[key]; ok {
		return col
	}
	return fallback
}

func paginate(b sq.SelectBuilder, q model.ListQuery, sorts sortColumns, fallback, tiebreak string) sq.SelectBuilder {
	paging := model.NewPaging(q.Page, model.PageSize, 0)
	return b.OrderBy(sorts.orderBy(q.Sort, fallback), tiebreak).
		Limit(uint64(model.PageSize)).
		Offset(uint64(paging.Offset()))
}

// mapErr translates driver errors into domain errors. fk is returned for a
// foreign key violation; nil keeps the driver error.
func mapErr(err error, op string, fk error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if fk != nil && errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return errors.Wrap(fk, pgErr.ConstraintName)
	}
	return errors.Wrap(err, op)
}
