package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cursada/internal/catalog"
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
)

type plannerService struct {
	loader   catalog.Loader
	store    SelectionStore
	observer UseCaseObserver
}

func NewPlannerService(loader catalog.Loader, store SelectionStore, observers ...UseCaseObserver) PlannerService {
	return &plannerService{loader: loader, store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *plannerService) Open(ctx context.Context, term string, program domain.Program) (st planner.State, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"term": term, "program": string(program)}
	defer func() { observe(ctx, s.observer, "open-planner", startedAt, err, fields) }()

	st = planner.NewState(term, program)

	var cat *domain.Catalog
	cat, err = s.loader.Load(ctx, term)
	st = planner.Update(st, planner.CatalogLoaded{Catalog: cat})
	st = planner.Update(st, planner.GrayZonesRestored{Zones: s.store.LoadGrayZones(ctx, term)})
	if err != nil {
		// Leave the stored selection alone; with no catalog every id
		// would look stale.
		return st, err
	}

	st = planner.Update(st, planner.SelectionRestored{IDs: s.store.LoadSelection(ctx, term, st.Catalog)})
	fields["selected"] = len(st.Selected)
	return st, nil
}

func (s *plannerService) Save(ctx context.Context, st planner.State) {
	s.store.SaveAll(ctx, st.Term, st.Selected, st.GrayZones)
}

func (s *plannerService) SaveGrayZones(ctx context.Context, st planner.State) {
	s.store.SaveGrayZones(ctx, st.Term, st.GrayZones)
}
