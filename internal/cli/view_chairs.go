package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chairsView lists the chairs of the current program.
type chairsView struct {
	state  *SharedState
	cursor int
}

func newChairsView(state *SharedState) *chairsView {
	return &chairsView{state: state}
}

func (v *chairsView) ID() ViewID    { return ViewChairs }
func (v *chairsView) Title() string { return "Cátedras" }

func (v *chairsView) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Open, keys.Program}
}

func (v *chairsView) Init() tea.Cmd { return nil }

func (v *chairsView) chairs() []domain.Catedra {
	return v.state.Plan.Catalog.ChairsByProgram(v.state.Plan.Program, "")
}

func (v *chairsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	chairs := v.chairs()
	switch {
	case key.Matches(km, keys.Up):
		v.cursor = max(v.cursor-1, 0)
	case key.Matches(km, keys.Down):
		v.cursor = min(v.cursor+1, max(len(chairs)-1, 0))
	case key.Matches(km, keys.Open):
		if v.cursor < len(chairs) {
			return v, pushView(newPracticalsView(v.state, chairs[v.cursor]))
		}
	case key.Matches(km, keys.Program):
		v.state.apply(planner.ProgramChanged{Program: nextProgram(v.state.Plan.Program)})
		v.cursor = 0
	}
	return v, nil
}

func (v *chairsView) View() string {
	chairs := v.chairs()
	if len(chairs) == 0 {
		if !v.state.Loaded {
			return formatter.Dim("Cargando cátedras…")
		}
		return formatter.Dim("No hay cátedras para " + string(v.state.Plan.Program) + ".")
	}

	picked := pickedChairs(v.state.Plan)
	lines := make([]string, 0, len(chairs))
	for i, ch := range chairs {
		mark := "  "
		if picked[ch.CatedraID] {
			mark = formatter.StyleGreen.Render("●") + " "
		}
		text := formatter.Truncate(fmt.Sprintf("%d %s", ch.CatedraID, ch.MateriaName), listWidth-4)
		if i == v.cursor {
			lines = append(lines, formatter.StyleHeader.Render("▸ ")+mark+formatter.Bold(text))
		} else {
			lines = append(lines, "  "+mark+text)
		}
	}
	return strings.Join(scrollWindow(lines, v.cursor, v.state.ListRows()), "\n")
}

// pickedChairs returns the chair numbers with at least one selected practical.
func pickedChairs(st planner.State) map[int]bool {
	out := make(map[int]bool)
	for id := range st.Selected {
		if sec, ok := st.Catalog.SectionByID(id); ok {
			out[sec.CatedraID] = true
		}
	}
	return out
}

func nextProgram(p domain.Program) domain.Program {
	for i, candidate := range domain.Programs {
		if candidate == p {
			return domain.Programs[(i+1)%len(domain.Programs)]
		}
	}
	return domain.Programs[0]
}

// scrollWindow returns at most height lines of lines, keeping cursor visible.
func scrollWindow(lines []string, cursor, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := max(cursor-height+1, 0)
	return lines[start : start+height]
}
