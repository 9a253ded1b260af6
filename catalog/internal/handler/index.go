package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/catalog/internal/view"
)

// Index renders the record counts. A storage error is shown on the page
// rather than failing the request.
func (h *Handler) Index(c echo.Context) error {
	counts, err := h.counts(c.Request().Context())
	data := view.Index{Counts: counts}
	if err != nil {
		h.log.Error("Index", zap.Error(err))
		data = view.Index{Error: err.Error()}
	}
	return h.render(c, "index", "Local Library Home", data, nil)
}

func (h *Handler) counts(ctx context.Context) (model.Counts, error) {
	var counts model.Counts
	gg, ctx := errgroup.WithContext(ctx)
	for entity, dst := range map[model.Entity]*int{
		model.EntityBook:         &counts.Books,
		model.EntityBookInstance: &counts.BookInstances,
		model.EntityAuthor:       &counts.Authors,
		model.EntityGenre:        &counts.Genres,
		model.EntityCountry:      &counts.Countries,
		model.EntityPrize:        &counts.Prizes,
		model.EntityFormato:      &counts.Formatos,
	} {
		entity, dst := entity, dst
		gg.Go(func() error {
			n, err := h.svc.Count(ctx, entity)
			*dst = n
			return err
		})
	}
	gg.Go(func() error {
		n, err := h.svc.CountBookInstancesByStatus(ctx, model.StatusAvailable)
		counts.BookInstancesAvailable = n
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Counts{}, err
	}
	return counts, nil
}
