package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/teatest"
	"github.com/alexanderramin/cursada/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the planner TUI for app, sets a 140x40 terminal and
// drains Init, which opens the planner synchronously.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	opts := &rootOptions{term: testutil.TestTerm, program: domain.ProgramPS}
	d := teatest.New(t, newAppModel(context.Background(), app, opts), teatest.WithSize(140, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) StackDepth() int {
	return len(d.appModel().viewStack)
}

func TestTUI_OpensPlannerAndListsChairs(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	st := d.State()
	assert.True(t, st.Loaded)
	assert.NoError(t, st.LoadErr)
	assert.Equal(t, ViewChairs, d.ActiveViewID())
	assert.Equal(t, float64(34), st.Plan.Viewport.Height)

	assert.True(t, d.ViewContains("cursada"))
	assert.True(t, d.ViewContains("Neurofisiología"))
	assert.True(t, d.ViewContains("Psicología General"))
	assert.True(t, d.ViewContains("Lun"))
	assert.True(t, d.ViewContains("0 prácticos"))
}

func TestTUI_RestoresStoredSelection(t *testing.T) {
	app := testApp(t)
	app.Store.SaveSelection(context.Background(), testutil.TestTerm, domain.NewIDSet(chair10P1, "stale"))

	d := NewTestDriver(t, app)
	assert.Equal(t, []string{chair10P1}, d.State().Plan.Selected.Sorted())
	assert.True(t, d.ViewContains("1 superposiciones"))
}

func TestTUI_HoverPreviewsAndSpaceToggles(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	// Chairs are sorted by course name, so Psicología General is second.
	d.Press("down")
	d.Press("enter")
	require.Equal(t, ViewPracticals, d.ActiveViewID())
	assert.Equal(t, chair10P1, d.State().Plan.HoverID)
	assert.True(t, d.ViewContains("Sem S1"))

	d.Press("down")
	assert.Equal(t, chair10P2, d.State().Plan.HoverID)

	d.Press("space")
	assert.True(t, d.State().Plan.Selected.Has(chair10P2))
	assert.Equal(t, []string{chair10P2}, storedSelection(t, app))

	d.Press("space")
	assert.False(t, d.State().Plan.Selected.Has(chair10P2))
	assert.Empty(t, storedSelection(t, app))
}

func TestTUI_EscReturnsAndClearsHover(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("enter")
	d.Press("space")
	require.Equal(t, 2, d.StackDepth())

	d.Press("esc")
	assert.Equal(t, 1, d.StackDepth())
	assert.Equal(t, ViewChairs, d.ActiveViewID())
	assert.Empty(t, d.State().Plan.HoverID)
	assert.True(t, d.ViewContains("●"))
	assert.True(t, d.ViewContains("1 prácticos"))
}

func TestTUI_ProgramCycleClearsSelectionInMemoryOnly(t *testing.T) {
	app := testApp(t)
	app.Store.SaveSelection(context.Background(), testutil.TestTerm, domain.NewIDSet(chair10P1))
	d := NewTestDriver(t, app)

	d.Press("p")
	assert.Equal(t, domain.ProgramPR, d.State().Plan.Program)
	assert.Empty(t, d.State().Plan.Selected)
	assert.Equal(t, []string{chair10P1}, storedSelection(t, app))
	assert.True(t, d.ViewContains("No hay cátedras para PR"))
}

func TestTUI_OfflineProgramCycleKeepsStoredSelection(t *testing.T) {
	app := offlineApp(t)
	ctx := context.Background()
	app.Store.SaveAll(ctx, testutil.TestTerm, domain.NewIDSet(chair10P1),
		[]domain.GrayZone{testutil.NewTestZone("z", 2, 600, 720)})

	d := NewTestDriver(t, app)
	require.Error(t, d.State().LoadErr)

	d.Press("p", "p")
	assert.Equal(t, domain.ProgramLM, d.State().Plan.Program)
	assert.Equal(t, []string{chair10P1}, storedSelection(t, app))
	assert.Len(t, app.Store.LoadGrayZones(ctx, testutil.TestTerm), 1)
}

func TestTUI_OfflineShowsWarningAndGrayZones(t *testing.T) {
	app := offlineApp(t)
	app.Store.SaveGrayZones(context.Background(), testutil.TestTerm,
		[]domain.GrayZone{testutil.NewTestZone("z", 2, 600, 720)})

	d := NewTestDriver(t, app)
	assert.Error(t, d.State().LoadErr)
	assert.True(t, d.ViewContains("Sin datos"))
	assert.True(t, d.ViewContains("░"))
	assert.Len(t, d.State().Plan.GrayZones, 1)
}

func TestTUI_ResizeUpdatesViewport(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Resize(100, 30)
	assert.Equal(t, float64(24), d.State().Plan.Viewport.Height)

	d.Resize(80, 5)
	assert.Equal(t, float64(minGridRows), d.State().Plan.Viewport.Height)
}

func TestTUI_CursorStaysInBounds(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("up", "down", "down", "down", "enter")
	require.Equal(t, ViewPracticals, d.ActiveViewID())
	assert.Equal(t, chair10P1, d.State().Plan.HoverID)
}

func TestTUI_QuitStopsRendering(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("q")
	assert.True(t, d.Quitting())
	assert.Empty(t, d.View())
}

func TestNextProgram_Cycles(t *testing.T) {
	assert.Equal(t, domain.ProgramPR, nextProgram(domain.ProgramPS))
	assert.Equal(t, domain.ProgramPS, nextProgram(domain.ProgramTE))
	assert.Equal(t, domain.ProgramPS, nextProgram("??"))
}

func TestScrollWindow(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, lines, scrollWindow(lines, 0, 10))
	assert.Equal(t, []string{"a", "b"}, scrollWindow(lines, 1, 2))
	assert.Equal(t, []string{"d", "e"}, scrollWindow(lines, 4, 2))
}
