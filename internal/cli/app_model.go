package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// appModel is the root bubbletea Model for the TUI. The active view fills
// the left pane; the week grid of the current plan fills the right.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(ctx context.Context, app *App, opts *rootOptions) appModel {
	state := &SharedState{
		App:  app,
		Ctx:  ctx,
		Plan: terminalState(planner.NewState(opts.term, opts.program), minGridRows),
	}
	return appModel{
		state:     state,
		viewStack: []View{newChairsView(state)},
	}
}

func newTUICmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, app *App, opts *rootOptions) error {
	p := tea.NewProgram(newAppModel(cmd.Context(), app, opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err := p.Run()
	return err
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return openPlannerCmd(m.state.Ctx, m.state.App, m.state.Plan.Term, m.state.Plan.Program)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.apply(planner.Resized{Height: float64(m.state.GridRows())})
		return m, m.forward(msg)

	case plannerOpenedMsg:
		m.state.Plan = terminalState(msg.state, m.state.GridRows())
		m.state.Loaded = true
		m.state.LoadErr = msg.err
		m.viewStack = []View{newChairsView(m.state)}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Back) && len(m.viewStack) > 1:
			return m.Update(popViewMsg{})
		}
		return m, m.forward(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.state.apply(planner.Hovered{})
		return m, nil

	case planSavedMsg:
		return m, nil
	}

	return m, m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if m.state.LoadErr != nil {
		sections = append(sections, formatter.StyleYellow.Render("Sin datos: "+m.state.LoadErr.Error()))
	}

	left := ""
	if v := m.activeView(); v != nil {
		left = v.View()
	}
	leftPane := lipgloss.NewStyle().Width(listWidth).MaxHeight(m.state.ListRows()).Render(left)

	plan := planner.Derive(m.state.Plan)
	grid := formatter.WeekGrid{
		Plan:    plan,
		Catalog: m.state.Plan.Catalog,
		Rows:    m.state.GridRows(),
		Width:   m.state.GridWidth(),
	}.Render()
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", grid))
	sections = append(sections, m.renderStatusBar(plan))

	return strings.Join(sections, "\n")
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("cursada")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	st := m.state.Plan
	header := title + breadcrumb + "  " + formatter.Dim("[") + formatter.StyleGreen.Render(st.Term) + formatter.Dim("]") +
		"  " + formatter.ProgramBadge(st.Program)
	if !m.state.Loaded {
		header += "  " + formatter.Dim("cargando…")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar(plan planner.Plan) string {
	hints := []string{
		formatter.StyleGreen.Render(fmt.Sprintf("%d prácticos", len(m.state.Plan.Selected))),
	}
	if n := len(plan.Overlaps); n > 0 {
		hints = append(hints, formatter.StyleRed.Render(fmt.Sprintf("%d superposiciones", n)))
	}
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim(keys.Back.Help().Key+": "+keys.Back.Help().Desc))
	}
	hints = append(hints, formatter.Dim(keys.Quit.Help().Key+": "+keys.Quit.Help().Desc))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
