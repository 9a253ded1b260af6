package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

// deletion loads the confirmation payload of a record and reports whether
// anything still references it.
type deletion func(ctx context.Context, id string) (data any, hasDependents bool, err error)

func (h *Handler) deleteGet(c echo.Context, entity model.Entity, load deletion) error {
	id, err := pathID(c)
	if err != nil {
		return c.Redirect(http.StatusFound, entity.ListURL())
	}
	data, _, err := load(c.Request().Context(), id)
	if errors.Is(err, errs.ErrNotFound) {
		return c.Redirect(http.StatusFound, entity.ListURL())
	}
	if err != nil {
		return fail(entity, err)
	}
	return h.render(c, templateName(entity, "delete"), "Delete "+entity.Label(), data, nil)
}

// deletePost removes the record unless it has dependents, in which case the
// confirmation page is shown again.
func (h *Handler) deletePost(c echo.Context, entity model.Entity, load deletion, remove func(ctx context.Context, id string) error) error {
	id, err := pathID(c)
	if err != nil {
		return c.Redirect(http.StatusFound, entity.ListURL())
	}
	ctx := c.Request().Context()
	data, hasDependents, err := load(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return c.Redirect(http.StatusFound, entity.ListURL())
	}
	if err != nil {
		return fail(entity, err)
	}
	if hasDependents {
		return h.render(c, templateName(entity, "delete"), "Delete "+entity.Label(), data, nil)
	}
	err = remove(ctx, id)
	switch {
	case errors.Is(err, errs.ErrHasDependents):
		// a dependent was added after the check
		return h.deleteGet(c, entity, load)
	case err != nil && !errors.Is(err, errs.ErrNotFound):
		return fail(entity, err)
	}
	return c.Redirect(http.StatusFound, entity.ListURL())
}
