package planner

import (
	"testing"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	p1 = "2025-2_PS_10_Prac_P1"
	p2 = "2025-2_PS_10_Prac_P2"
)

func loadedState(t *testing.T) State {
	t.Helper()
	s := NewState(testutil.TestTerm, domain.ProgramPS)
	return Update(s, CatalogLoaded{Catalog: testutil.SampleCatalog()})
}

func TestUpdate_DoesNotMutatePreviousSnapshot(t *testing.T) {
	before := loadedState(t)
	after := Update(before, PracticalToggled{ID: p1})

	assert.False(t, before.Selected.Has(p1))
	assert.True(t, after.Selected.Has(p1))

	zone := testutil.NewTestZone("z1", 1, 480, 540)
	withZone := Update(after, GrayZoneAdded{Zone: zone})
	assert.Empty(t, after.GrayZones)
	assert.Len(t, withZone.GrayZones, 1)
}

func TestUpdate_ToggleTwiceRemoves(t *testing.T) {
	s := loadedState(t)
	s = Update(s, PracticalToggled{ID: p1})
	s = Update(s, PracticalToggled{ID: p1})
	assert.Empty(t, s.Selected)
}

func TestUpdate_ProgramChangeClearsSelection(t *testing.T) {
	s := Update(loadedState(t), PracticalToggled{ID: p1})
	s = Update(s, Hovered{ID: p2})

	same := Update(s, ProgramChanged{Program: domain.ProgramPS})
	assert.True(t, same.Selected.Has(p1), "re-selecting the same program keeps the selection")

	other := Update(s, ProgramChanged{Program: domain.ProgramLM})
	assert.Equal(t, domain.ProgramLM, other.Program)
	assert.Empty(t, other.Selected)
	assert.Empty(t, other.HoverID)
}

func TestUpdate_GrayZones(t *testing.T) {
	s := loadedState(t)
	s = Update(s, GrayZoneAdded{Zone: testutil.NewTestZone("a", 1, 480, 540)})
	s = Update(s, GrayZoneAdded{Zone: testutil.NewTestZone("bad", 9, 480, 540)})
	s = Update(s, GrayZoneAdded{Zone: testutil.NewTestZone("b", 2, 600, 660)})
	require.Len(t, s.GrayZones, 2, "invalid zones are ignored")

	s = Update(s, GrayZoneRemoved{ID: "a"})
	require.Len(t, s.GrayZones, 1)
	assert.Equal(t, "b", s.GrayZones[0].ID)
}

func TestUpdate_FailedLoadLeavesEmptyCatalog(t *testing.T) {
	s := Update(loadedState(t), CatalogLoaded{Catalog: nil})
	require.NotNil(t, s.Catalog)
	assert.True(t, s.Catalog.Empty())

	plan := Derive(Update(s, PracticalToggled{ID: p1}))
	assert.Empty(t, plan.Resolved)
	assert.Equal(t, Window{Start: 480, End: 1320}, plan.Window)
}

func TestDerive_ResolvesAndLaysOut(t *testing.T) {
	s := Update(loadedState(t), PracticalToggled{ID: p1})
	plan := Derive(s)

	require.Len(t, plan.Resolved, 3)
	require.Len(t, plan.Meets, 3)
	assert.Len(t, plan.Blocks, 3)
	assert.Equal(t, Window{Start: 480, End: 1320}, plan.Window)

	// Teo A (Mon 10:00-12:00) overlaps Prac P1 (Mon 09:00-10:30).
	require.Len(t, plan.Overlaps, 1)
	assert.Equal(t, OverlapMeets, plan.Overlaps[0].Kind)
	assert.Equal(t, 600, plan.Overlaps[0].StartMin)
	assert.Equal(t, 630, plan.Overlaps[0].EndMin)
}

func TestDerive_WindowGrowsWithSelection(t *testing.T) {
	s := Update(loadedState(t), PracticalToggled{ID: "2025-2_PS_20_Prac_P1"})
	plan := Derive(s)
	assert.Equal(t, 420, plan.Window.Start, "Teo A of chair 20 starts at 07:00")
	assert.Equal(t, 1380, plan.Window.End, "Prac P1 of chair 20 ends at 23:00")
	assert.Equal(t, 7, plan.HourLines[0].Hour)
}

func TestDerive_HoverPreview(t *testing.T) {
	s := Update(loadedState(t), Hovered{ID: p2})
	plan := Derive(s)

	assert.Empty(t, plan.Blocks)
	require.Len(t, plan.Preview, 2, "P2's own meeting plus Teo A; the missing seminar is skipped")
	for _, b := range plan.Preview {
		assert.Equal(t, BlockPreview, b.Kind)
	}

	cleared := Derive(Update(s, Hovered{}))
	assert.Empty(t, cleared.Preview)

	unknown := Derive(Update(s, Hovered{ID: "nope"}))
	assert.Empty(t, unknown.Preview)
}

func TestDerive_ResizeRecomputesLayout(t *testing.T) {
	s := Update(loadedState(t), PracticalToggled{ID: p1})
	small := Derive(s)
	big := Derive(Update(s, Resized{Height: 1200}))

	require.Len(t, big.Blocks, len(small.Blocks))
	assert.Greater(t, big.Blocks[0].Bottom, small.Blocks[0].Bottom)
}

func TestDerive_IsPure(t *testing.T) {
	s := Update(loadedState(t), PracticalToggled{ID: p1})
	s = Update(s, GrayZoneAdded{Zone: testutil.NewTestZone("z", 1, 540, 600)})
	assert.Equal(t, Derive(s), Derive(s))
}

func TestDerive_GrayZoneOverlap(t *testing.T) {
	s := Update(loadedState(t), PracticalToggled{ID: p1})
	s = Update(s, GrayZoneAdded{Zone: testutil.NewTestZone("z", 3, 870, 960)})
	plan := Derive(s)

	require.Len(t, plan.GrayZones, 1)
	var zoneHits int
	for _, o := range plan.Overlaps {
		if o.Kind == OverlapGrayZone {
			zoneHits++
			assert.Equal(t, "z", o.B)
		}
	}
	assert.Equal(t, 1, zoneHits, "Sem S1 on Wednesday 14:00-15:30 overlaps the zone")
}
