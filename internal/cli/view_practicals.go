package cli

import (
	"strings"

	"github.com/alexanderramin/cursada/internal/cli/formatter"
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// practicalsView lists the practicals of one chair. The row under the
// cursor is the hovered practical, so its meetings and requirements are
// previewed on the grid.
type practicalsView struct {
	state  *SharedState
	chair  domain.Catedra
	cursor int
}

func newPracticalsView(state *SharedState, chair domain.Catedra) *practicalsView {
	v := &practicalsView{state: state, chair: chair}
	v.hover()
	return v
}

func (v *practicalsView) ID() ViewID    { return ViewPracticals }
func (v *practicalsView) Title() string { return formatter.Truncate(v.chair.MateriaName, 24) }

func (v *practicalsView) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Toggle}
}

func (v *practicalsView) Init() tea.Cmd { return nil }

func (v *practicalsView) practicals() []domain.Section {
	return v.state.Plan.Catalog.PracticalsForChair(v.chair.Program, v.chair.CatedraID)
}

func (v *practicalsView) hover() {
	id := ""
	if pracs := v.practicals(); v.cursor < len(pracs) {
		id = pracs[v.cursor].ID
	}
	v.state.apply(planner.Hovered{ID: id})
}

func (v *practicalsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	pracs := v.practicals()
	switch {
	case key.Matches(km, keys.Up):
		v.cursor = max(v.cursor-1, 0)
		v.hover()
	case key.Matches(km, keys.Down):
		v.cursor = min(v.cursor+1, max(len(pracs)-1, 0))
		v.hover()
	case key.Matches(km, keys.Toggle):
		if v.cursor < len(pracs) {
			v.state.apply(planner.PracticalToggled{ID: pracs[v.cursor].ID})
			return v, v.state.saveCmd()
		}
	}
	return v, nil
}

func (v *practicalsView) View() string {
	pracs := v.practicals()
	header := formatter.Bold(formatter.Truncate(v.chair.MateriaName, listWidth)) + "\n" +
		formatter.Dim(formatter.Truncate(v.chair.DocenteTitular, listWidth)) + "\n"
	if len(pracs) == 0 {
		return header + formatter.Dim("Sin prácticos.")
	}

	by := v.state.Plan.Catalog.MeetsBySection()
	lines := make([]string, 0, len(pracs))
	for i, p := range pracs {
		box := "[ ]"
		if v.state.Plan.Selected.Has(p.ID) {
			box = formatter.StyleGreen.Render("[x]")
		}
		text := formatter.Truncate(p.Label+"  "+formatter.MeetSlots(by[p.ID]), listWidth-6)
		if i == v.cursor {
			lines = append(lines, formatter.StyleHeader.Render("▸ ")+box+" "+formatter.Bold(text))
		} else {
			lines = append(lines, "  "+box+" "+text)
		}
	}

	detail := ""
	if v.cursor < len(pracs) {
		detail = "\n\n" + v.detail(pracs[v.cursor])
	}
	return header + strings.Join(scrollWindow(lines, v.cursor, v.state.ListRows()-8), "\n") + detail
}

// detail describes the hovered practical: instructors, vacancies and the
// sections it pulls in.
func (v *practicalsView) detail(p domain.Section) string {
	var b strings.Builder
	b.WriteString(formatter.Dim("Docentes: ") + formatter.Truncate(strings.Join(p.UniqueDocentes(), ", "), listWidth-10) + "\n")
	b.WriteString(formatter.Dim("Vacantes: ") + formatter.Vacancies(p.Vacantes) + "\n")
	cat := v.state.Plan.Catalog
	by := cat.MeetsBySection()
	for _, id := range planner.RequirementIDs(p.ID, cat.Sections).Sorted() {
		if sec, ok := cat.SectionByID(id); ok {
			b.WriteString(formatter.Dim("+ ") + formatter.KindStyle(sec.Kind).Render(string(sec.Kind)+" "+sec.Label) + " " +
				formatter.MeetSlots(by[id]) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
