package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

func selectCountries() sq.SelectBuilder {
	return qb.Select("id", "name", "continent").From(countriesTableName)
}

func (r *repository) ListCountries(ctx context.Context, q model.ListQuery) (model.List[model.Country], error) {
	total, err := r.Count(ctx, model.EntityCountry)
	if err != nil {
		return model.List[model.Country]{}, err
	}
	countries, err := selectAll[model.Country](ctx, r.db,
		paginate(selectCountries(), q, countrySorts, "name", "id"))
	if err != nil {
		return model.List[model.Country]{}, mapErr(err, "ListCountries", nil)
	}
	return model.List[model.Country]{
		Paging: model.NewPaging(q.Page, model.PageSize, total),
		Items:  countries,
	}, nil
}

func (r *repository) GetCountry(ctx context.Context, id string) (model.Country, error) {
	country, err := selectOne[model.Country](ctx, r.db, selectCountries().Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		return model.Country{}, mapErr(err, "GetCountry", nil)
	}
	return country, nil
}

func (r *repository) AllCountries(ctx context.Context) ([]model.Country, error) {
	countries, err := selectAll[model.Country](ctx, r.db, selectCountries().OrderBy("name", "id"))
	if err != nil {
		return nil, mapErr(err, "AllCountries", nil)
	}
	return countries, nil
}

func (r *repository) CreateCountry(ctx context.Context, country model.Country) (model.Country, error) {
	country.ID = uuid.NewString()
	err := exec(ctx, r.db, qb.Insert(countriesTableName).
		Columns("id", "name", "continent").
		Values(country.ID, country.Name, country.Continent))
	if err != nil {
		return model.Country{}, mapErr(err, "CreateCountry", nil)
	}
	return country, nil
}

func (r *repository) UpdateCountry(ctx context.Context, country model.Country) (model.Country, error) {
	err := exec(ctx, r.db, qb.Update(countriesTableName).
		Set("name", country.Name).
		Set("continent", country.Continent).
		Where(sq.Eq{"id": country.ID}))
	if err != nil {
		return model.Country{}, mapErr(err, "UpdateCountry", nil)
	}
	return country, nil
}

func (r *repository) DeleteCountry(ctx context.Context, id string) error {
	err := exec(ctx, r.db, qb.Delete(countriesTableName).Where(sq.Eq{"id": id}))
	return mapErr(err, "DeleteCountry", errs.ErrHasDependents)
}
