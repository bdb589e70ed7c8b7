package cli

import (
	"context"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// listWidth is the width of the left pane holding the active view.
	listWidth = 38
	// chromeRows are the rows taken by the header, the grid's day row and
	// the status bar.
	chromeRows  = 6
	minGridRows = 8
)

// SharedState is the planner snapshot and terminal geometry shared by all
// views. Views replace Plan through apply; they never mutate it in place.
type SharedState struct {
	App  *App
	Ctx  context.Context
	Plan planner.State

	Loaded  bool
	LoadErr error

	Width  int
	Height int
}

func (s *SharedState) apply(ev planner.Event) {
	s.Plan = planner.Update(s.Plan, ev)
}

// GridRows is the number of rows available to the week grid.
func (s *SharedState) GridRows() int {
	return max(s.Height-chromeRows, minGridRows)
}

// GridWidth is the number of columns available to the week grid.
func (s *SharedState) GridWidth() int {
	return max(s.Width-listWidth-1, 0)
}

// ListRows is the number of lines a view may use in the left pane.
func (s *SharedState) ListRows() int {
	return s.GridRows() + 1
}

// saveCmd persists a copy of the current plan. Nothing is written until a
// catalog has loaded.
func (s *SharedState) saveCmd() tea.Cmd {
	if !s.Loaded || s.LoadErr != nil {
		return nil
	}
	app, ctx, st := s.App, s.Ctx, s.Plan
	return func() tea.Msg {
		app.Planner.Save(ctx, st)
		return planSavedMsg{}
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

type plannerOpenedMsg struct {
	state planner.State
	err   error
}

type pushViewMsg struct{ view View }

type popViewMsg struct{}

type planSavedMsg struct{}

func openPlannerCmd(ctx context.Context, app *App, term string, program domain.Program) tea.Cmd {
	return func() tea.Msg {
		st, err := app.Planner.Open(ctx, term, program)
		return plannerOpenedMsg{state: st, err: err}
	}
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func terminalState(st planner.State, rows int) planner.State {
	st.Viewport = formatter.TerminalViewport(rows)
	return st
}
