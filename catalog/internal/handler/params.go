package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
)

// listQuery reads page and sort. A missing, non-numeric or negative page is 0.
func listQuery(c echo.Context) model.ListQuery {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		page = 0
	}
	return model.ListQuery{
		Page: page,
		Sort: c.QueryParam("sort"),
	}
}

// pathID returns the :id parameter; anything that is not a uuid cannot name a
// record and reports errs.ErrNotFound.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errs.ErrNotFound
	}
	return id, nil
}

// normalizeIDs trims the submitted values of a multi-value field, dropping
// blanks and repeats while keeping order.
func normalizeIDs(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// parseDate reads an already validated yyyy-mm-dd value; empty gives nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
