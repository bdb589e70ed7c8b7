package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/cursada/internal/catalog"
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/alexanderramin/cursada/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	cat *domain.Catalog
	err error
}

func (l stubLoader) Load(context.Context, string) (*domain.Catalog, error) {
	return l.cat, l.err
}

func TestPlannerService_OpenRestoresSelectionAndZones(t *testing.T) {
	ctx := context.Background()
	store := NewSelectionStore(newTestKVStore(t))
	zone := testutil.NewTestZone("z", 3, 870, 960)
	store.SaveAll(ctx, testutil.TestTerm, domain.NewIDSet(pracP1, "gone"), []domain.GrayZone{zone})

	svc := NewPlannerService(stubLoader{cat: testutil.SampleCatalog()}, store)
	st, err := svc.Open(ctx, testutil.TestTerm, domain.ProgramPS)
	require.NoError(t, err)

	assert.Equal(t, []string{pracP1}, st.Selected.Sorted())
	assert.Equal(t, []domain.GrayZone{zone}, st.GrayZones)

	plan := planner.Derive(st)
	assert.Len(t, plan.Resolved, 3)
	assert.NotEmpty(t, plan.Overlaps)
}

func TestPlannerService_FailedLoadYieldsEmptyCatalogAndKeepsStorage(t *testing.T) {
	ctx := context.Background()
	kv := newTestKVStore(t)
	store := NewSelectionStore(kv)
	store.SaveSelection(ctx, testutil.TestTerm, domain.NewIDSet(pracP1))
	obs := &recordingObserver{}

	loadErr := fmt.Errorf("%w: offline", catalog.ErrDataUnavailable)
	svc := NewPlannerService(stubLoader{err: loadErr}, store, obs)
	st, err := svc.Open(ctx, testutil.TestTerm, domain.ProgramPS)

	require.ErrorIs(t, err, catalog.ErrDataUnavailable)
	assert.True(t, st.Catalog.Empty())
	assert.Empty(t, st.Selected)
	assert.Empty(t, planner.Derive(st).Blocks)

	raw, getErr := kv.KV().Get(ctx, SelectionKey(testutil.TestTerm))
	require.NoError(t, getErr)
	assert.Contains(t, raw, pracP1, "the stored selection must survive an offline start")
	require.Len(t, obs.failures(), 1)
	assert.Equal(t, "open-planner", obs.failures()[0].Name)
}

func TestPlannerService_SavePersistsState(t *testing.T) {
	ctx := context.Background()
	store := NewSelectionStore(newTestKVStore(t))
	svc := NewPlannerService(stubLoader{cat: testutil.SampleCatalog()}, store)

	st, err := svc.Open(ctx, testutil.TestTerm, domain.ProgramPS)
	require.NoError(t, err)
	st = planner.Update(st, planner.PracticalToggled{ID: pracC20})
	st = planner.Update(st, planner.GrayZoneAdded{Zone: testutil.NewTestZone("z", 5, 1200, 1260)})
	svc.Save(ctx, st)

	reopened, err := svc.Open(ctx, testutil.TestTerm, domain.ProgramPS)
	require.NoError(t, err)
	assert.True(t, reopened.Selected.Equal(st.Selected))
	assert.Equal(t, st.GrayZones, reopened.GrayZones)
}

func TestPlannerService_SaveGrayZonesLeavesSelection(t *testing.T) {
	ctx := context.Background()
	store := NewSelectionStore(newTestKVStore(t))
	svc := NewPlannerService(stubLoader{cat: testutil.SampleCatalog()}, store)

	st, err := svc.Open(ctx, testutil.TestTerm, domain.ProgramPS)
	require.NoError(t, err)
	st = planner.Update(st, planner.PracticalToggled{ID: pracP1})
	st = planner.Update(st, planner.GrayZoneAdded{Zone: testutil.NewTestZone("z", 1, 480, 540)})
	svc.SaveGrayZones(ctx, st)

	reopened, err := svc.Open(ctx, testutil.TestTerm, domain.ProgramPS)
	require.NoError(t, err)
	assert.Empty(t, reopened.Selected, "only an explicit save stores the selection")
	assert.Len(t, reopened.GrayZones, 1)
}
