package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

func selectAuthors() sq.SelectBuilder {
	return qb.Select("a.id", "a.first_name", "a.family_name", "a.date_of_birth", "a.date_of_death").
		From(authorsTableName + " a")
}

func (r *repository) ListAuthors(ctx context.Context, q model.ListQuery) (model.List[model.Author], error) {
	total, err := r.Count(ctx, model.EntityAuthor)
	if err != nil {
		return model.List[model.Author]{}, err
	}
	authors, err := selectAll[model.Author](ctx, r.db,
		paginate(selectAuthors(), q, authorSorts, "a.created_at", "a.id"))
	if err != nil {
		return model.List[model.Author]{}, mapErr(err, "ListAuthors", nil)
	}
	return model.List[model.Author]{
		Paging: model.NewPaging(q.Page, model.PageSize, total),
		Items:  authors,
	}, nil
}

func (r *repository) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	author, err := selectOne[model.Author](ctx, r.db, selectAuthors().Where(sq.Eq{"a.id": id}).Limit(1))
	if err != nil {
		return model.Author{}, mapErr(err, "GetAuthor", nil)
	}
	countries, err := selectAll[model.Country](ctx, r.db, qb.Select("c.id", "c.name", "c.continent").
		From(countriesTableName+" c").
		Join(authorCountriesTableName+" ac on ac.country_id = c.id").
		Where(sq.Eq{"ac.author_id": id}).
		OrderBy("c.name", "c.id"))
	if err != nil {
		return model.Author{}, mapErr(err, "GetAuthor countries", nil)
	}
	author.Countries = countries
	return author, nil
}

func (r *repository) AllAuthors(ctx context.Context) ([]model.Author, error) {
	authors, err := selectAll[model.Author](ctx, r.db, selectAuthors().OrderBy("a.family_name", "a.first_name", "a.id"))
	if err != nil {
		return nil, mapErr(err, "AllAuthors", nil)
	}
	return authors, nil
}

func (r *repository) ListAuthorsByCountry(ctx context.Context, countryID string) ([]model.Author, error) {
	authors, err := selectAll[model.Author](ctx, r.db, selectAuthors().
		Join(authorCountriesTableName+" ac on ac.author_id = a.id").
		Where(sq.Eq{"ac.country_id": countryID}).
		OrderBy("a.family_name", "a.first_name", "a.id"))
	if err != nil {
		return nil, mapErr(err, "ListAuthorsByCountry", nil)
	}
	return authors, nil
}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	author.ID = uuid.NewString()
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query, args, err := qb.Insert(authorsTableName).
			Columns("id", "first_name", "family_name", "date_of_birth", "date_of_death").
			Values(author.ID, author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath).
			ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		return insertRefs(ctx, tx, authorCountriesTableName, "author_id", author.ID, "country_id", model.CountryIDs(author.Countries))
	})
	if err != nil {
		return model.Author{}, mapErr(err, "CreateAuthor", errs.ErrInvalidReference)
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := exec(ctx, tx, qb.Update(authorsTableName).
			Set("first_name", author.FirstName).
			Set("family_name", author.FamilyName).
			Set("date_of_birth", author.DateOfBirth).
			Set("date_of_death", author.DateOfDeath).
			Where(sq.Eq{"id": author.ID}))
		if err != nil {
			return err
		}
		return replaceRefs(ctx, tx, authorCountriesTableName, "author_id", author.ID, "country_id", model.CountryIDs(author.Countries))
	})
	if err != nil {
		return model.Author{}, mapErr(err, "UpdateAuthor", errs.ErrInvalidReference)
	}
	return author, nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id string) error {
	err := exec(ctx, r.db, qb.Delete(authorsTableName).Where(sq.Eq{"id": id}))
	return mapErr(err, "DeleteAuthor", errs.ErrHasDependents)
}
