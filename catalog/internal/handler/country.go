package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/view"
)

var countrySorts = []view.SortKey{
	{Key: "name", Label: "Name"},
	{Key: "continent", Label: "Continent"},
}

func (h *Handler) CountryList(c echo.Context) error {
	list, err := h.svc.ListCountries(c.Request().Context(), listQuery(c))
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	return h.render(c, "country_list", "Country List",
		view.NewList(model.EntityCountry, list, c.QueryParams(), countrySorts), nil)
}

func (h *Handler) CountryDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	data, err := h.loadCountry(c.Request().Context(), id)
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	return h.render(c, "country_detail", "Country Detail", data, nil)
}

// loadCountry fetches a country together with the authors from it.
func (h *Handler) loadCountry(ctx context.Context, id string) (view.CountryDetail, error) {
	var data view.CountryDetail
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		data.Country, err = h.svc.GetCountry(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		data.Authors, err = h.svc.ListAuthorsByCountry(ctx, id)
		return err
	})
	return data, gg.Wait()
}

func (h *Handler) CountryCreateGet(c echo.Context) error {
	return h.render(c, "country_form", "Create Country", view.CountryForm{}, nil)
}

func (h *Handler) CountryCreatePost(c echo.Context) error {
	var f countryForm
	ferrs, err := bindForm(c, &f, countryMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.render(c, "country_form", "Create Country", view.CountryForm(f), ferrs)
	}
	country, err := h.svc.CreateCountry(c.Request().Context(), f.toModel(""))
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	return c.Redirect(http.StatusFound, country.URL())
}

func (h *Handler) CountryUpdateGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	country, err := h.svc.GetCountry(c.Request().Context(), id)
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	return h.render(c, "country_form", "Update Country",
		view.CountryForm{Name: country.Name, Continent: country.Continent}, nil)
}

func (h *Handler) CountryUpdatePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	var f countryForm
	ferrs, err := bindForm(c, &f, countryMessages)
	if err != nil {
		return err
	}
	if len(ferrs) > 0 {
		return h.render(c, "country_form", "Update Country", view.CountryForm(f), ferrs)
	}
	country, err := h.svc.UpdateCountry(c.Request().Context(), f.toModel(id))
	if err != nil {
		return fail(model.EntityCountry, err)
	}
	return c.Redirect(http.StatusFound, country.URL())
}

func (h *Handler) CountryDeleteGet(c echo.Context) error {
	return h.deleteGet(c, model.EntityCountry, h.countryDeletion)
}

func (h *Handler) CountryDeletePost(c echo.Context) error {
	return h.deletePost(c, model.EntityCountry, h.countryDeletion, h.svc.DeleteCountry)
}

func (h *Handler) countryDeletion(ctx context.Context, id string) (any, bool, error) {
	data, err := h.loadCountry(ctx, id)
	return data, len(data.Authors) > 0, err
}
