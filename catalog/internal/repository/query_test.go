package repository

import (
	"fmt"
	"math"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

func TestPaginate(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name    string
		query   model.ListQuery
		wantSQL string
	}{
		{
			name:    "default order, first page",
			query:   model.ListQuery{},
			wantSQL: "SELECT id, name FROM countries ORDER BY name, id LIMIT 5 OFFSET 0",
		},
		{
			name:    "known sort key",
			query:   model.ListQuery{Page: 2, Sort: "continent"},
			wantSQL: "SELECT id, name FROM countries ORDER BY continent, id LIMIT 5 OFFSET 10",
		},
		{
			name:    "unknown sort key is ignored",
			query:   model.ListQuery{Sort: "name; drop table countries"},
			wantSQL: "SELECT id, name FROM countries ORDER BY name, id LIMIT 5 OFFSET 0",
		},
		{
			name:    "negative page",
			query:   model.ListQuery{Page: -3},
			wantSQL: "SELECT id, name FROM countries ORDER BY name, id LIMIT 5 OFFSET 0",
		},
		{
			name:    "page past int range stays a valid offset",
			query:   model.ListQuery{Page: math.MaxInt/model.PageSize + 1},
			wantSQL: fmt.Sprintf("SELECT id, name FROM countries ORDER BY name, id LIMIT 5 OFFSET %d", math.MaxInt/model.PageSize*model.PageSize),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := paginate(qb.Select("id", "name").From(countriesTableName), tt.query, countrySorts, "name", "id")
			query, args, err := b.ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, query)
			require.Empty(t, args)
		})
	}
}

func TestSelectBooks_Sorted(t *testing.T) {
	t.Parallel()
	b := paginate(selectBooks(), model.ListQuery{Page: 1, Sort: "author"}, bookSorts, "b.created_at", "b.id")
	query, _, err := b.ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "JOIN authors a on a.id = b.author_id")
	require.Contains(t, query, "ORDER BY a.family_name, a.first_name, b.id LIMIT 5 OFFSET 5")
}

func TestTagTables(t *testing.T) {
	t.Parallel()
	tt, err := tagTables(model.EntityFormato)
	require.NoError(t, err)
	require.Equal(t, tagTable{table: "formatos", join: "book_formatos", column: "formato_id"}, tt)

	_, err = tagTables(model.EntityBook)
	require.ErrorIs(t, err, errs.ErrUnknownEntityKind)

	_, err = tableName(model.Entity("shelf"))
	require.ErrorIs(t, err, errs.ErrUnknownEntityKind)
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	fkErr := fmt.Errorf("exec: %w", &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: "books_author_id_fkey",
	})
	var tests = []struct {
		name    string
		err     error
		fk      error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: pgx.ErrNoRows, wantIs: errs.ErrNotFound},
		{name: "fk on delete", err: fkErr, fk: errs.ErrHasDependents, wantIs: errs.ErrHasDependents},
		{name: "fk on insert", err: fkErr, fk: errs.ErrInvalidReference, wantIs: errs.ErrInvalidReference},
		{name: "fk not mapped", err: fkErr, wantIs: fkErr},
		{name: "other", err: errors.New("conn reset"), fk: errs.ErrHasDependents},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := mapErr(tt.err, "op", tt.fk)
			if tt.wantNil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantIs == nil {
				require.NotErrorIs(t, err, errs.ErrHasDependents)
				require.Contains(t, err.Error(), "op")
			}
		})
	}
}
