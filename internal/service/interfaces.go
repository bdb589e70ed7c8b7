package service

import (
	"context"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
)

// SelectionStore persists a term's practical selection and gray zones. It is
// best effort: read failures yield empty values and write failures are
// logged, never returned.
type SelectionStore interface {
	// LoadSelection returns the stored ids that are still practicals of cat.
	LoadSelection(ctx context.Context, term string, cat *domain.Catalog) domain.IDSet
	SaveSelection(ctx context.Context, term string, ids domain.IDSet)
	// LoadGrayZones returns the stored zones that pass validation.
	LoadGrayZones(ctx context.Context, term string) []domain.GrayZone
	SaveGrayZones(ctx context.Context, term string, zones []domain.GrayZone)
	// SaveAll writes the selection and the gray zones together.
	SaveAll(ctx context.Context, term string, ids domain.IDSet, zones []domain.GrayZone)
	// Terms lists the terms that have anything stored, sorted.
	Terms(ctx context.Context) []string
}

type PlannerService interface {
	// Open loads the term's catalog and restores the stored selection and
	// gray zones. The returned state is always usable: when the catalog
	// cannot be loaded it is empty and err wraps catalog.ErrDataUnavailable.
	Open(ctx context.Context, term string, program domain.Program) (planner.State, error)
	// Save persists the selection and gray zones of s.
	Save(ctx context.Context, s planner.State)
	// SaveGrayZones persists only the gray zones of s.
	SaveGrayZones(ctx context.Context, s planner.State)
}
