package formatter

import (
	"math"
	"strings"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
	"github.com/charmbracelet/lipgloss"
)

const (
	gutterWidth  = 6
	minColWidth  = 6
	conflictText = "‼ choque"
)

var (
	styleZone     = lipgloss.NewStyle().Foreground(ColorDim)
	stylePreview  = lipgloss.NewStyle().Foreground(ColorBlue)
	styleConflict = lipgloss.NewStyle().Foreground(lipgloss.Color("#282828")).Background(ColorRed).Bold(true)
	styleDayHead  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// TerminalViewport is the viewport used when the grid is drawn in a
// terminal: one unit per row with a single row of padding at each end.
func TerminalViewport(rows int) planner.Viewport {
	return planner.Viewport{Height: float64(rows), PadTop: 1, PadBottom: 1}
}

type cellRef struct {
	id   string
	line int
}

type gridCell struct {
	meets   []cellRef
	preview *cellRef
	zone    bool
}

// WeekGrid draws a planner.Plan as a six-day text grid. The plan must have
// been derived with a TerminalViewport of Rows rows.
type WeekGrid struct {
	Plan    planner.Plan
	Catalog *domain.Catalog
	Rows    int
	Width   int
}

// Render returns the grid with a header row of day abbreviations.
func (g WeekGrid) Render() string {
	rows := max(g.Rows, 1)
	colWidth := max((g.Width-gutterWidth)/domain.DayCount, minColWidth)

	cells := make([][]gridCell, domain.DayCount)
	for d := range cells {
		cells[d] = make([]gridCell, rows)
	}
	eachRow := func(b planner.Block, fn func(row, line int)) {
		col := b.Column()
		if col < 0 || col >= domain.DayCount {
			return
		}
		top := int(math.Round(b.Top))
		bottom := max(int(math.Round(b.Bottom)), top+1)
		for r := max(top, 0); r < bottom && r < rows; r++ {
			fn(r, r-top)
		}
	}
	for _, b := range g.Plan.GrayZones {
		eachRow(b, func(r, _ int) { cells[b.Column()][r].zone = true })
	}
	for _, b := range g.Plan.Preview {
		eachRow(b, func(r, line int) { cells[b.Column()][r].preview = &cellRef{id: b.ID, line: line} })
	}
	for _, b := range g.Plan.Blocks {
		eachRow(b, func(r, line int) {
			cells[b.Column()][r].meets = append(cells[b.Column()][r].meets, cellRef{id: b.ID, line: line})
		})
	}

	hourAt := make(map[int]int, len(g.Plan.HourLines))
	for _, h := range g.Plan.HourLines {
		r := int(math.Round(h.Y))
		if r >= 0 && r < rows {
			hourAt[r] = h.Hour
		}
	}

	labels := newMeetLabels(g.Catalog)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for d := 1; d <= domain.DayCount; d++ {
		b.WriteString(styleDayHead.Render(pad(domain.DayAbbr(d), colWidth)))
	}
	b.WriteString("\n")

	for r := 0; r < rows; r++ {
		if h, ok := hourAt[r]; ok {
			b.WriteString(StyleDim.Render(pad(domain.FormatClock(h*60), gutterWidth)))
		} else {
			b.WriteString(strings.Repeat(" ", gutterWidth))
		}
		_, onHour := hourAt[r]
		for d := 0; d < domain.DayCount; d++ {
			b.WriteString(labels.renderCell(cells[d][r], colWidth, onHour))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type meetLabels struct {
	meets    map[string]domain.Meet
	sections map[string]*domain.Section
}

func newMeetLabels(cat *domain.Catalog) meetLabels {
	l := meetLabels{meets: map[string]domain.Meet{}, sections: map[string]*domain.Section{}}
	if cat == nil {
		return l
	}
	for _, m := range cat.Meets {
		l.meets[m.ID] = m
	}
	for i := range cat.Sections {
		l.sections[cat.Sections[i].ID] = &cat.Sections[i]
	}
	return l
}

// lines returns the text rows of a meet block: course, section and room.
func (l meetLabels) lines(meetID string) ([]string, domain.SectionKind) {
	m, ok := l.meets[meetID]
	if !ok {
		return []string{meetID}, ""
	}
	sec, ok := l.sections[m.SectionID]
	if !ok {
		return []string{m.SectionID, TimeRange(m.StartMin, m.EndMin)}, m.Kind
	}
	return []string{
		sec.MateriaName,
		string(sec.Kind) + " " + sec.Label,
		TimeRange(m.StartMin, m.EndMin),
	}, sec.Kind
}

func (l meetLabels) renderCell(c gridCell, width int, onHour bool) string {
	inner := width - 1
	switch {
	case len(c.meets) > 1:
		return styleConflict.Render(pad(conflictText, inner)) + " "
	case len(c.meets) == 1:
		lines, kind := l.lines(c.meets[0].id)
		text := ""
		if c.meets[0].line < len(lines) {
			text = lines[c.meets[0].line]
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#282828")).Background(kindColor(kind))
		return style.Render(pad(text, inner)) + " "
	case c.preview != nil:
		text := strings.Repeat("┆", inner)
		if lines, _ := l.lines(c.preview.id); c.preview.line < len(lines) {
			text = lines[c.preview.line]
		}
		return stylePreview.Render(pad(text, inner)) + " "
	case c.zone:
		return styleZone.Render(strings.Repeat("░", inner)) + " "
	case onHour:
		return StyleDim.Render(strings.Repeat("┈", inner)) + " "
	default:
		return strings.Repeat(" ", width)
	}
}

// pad truncates or right-pads s to exactly n cells.
func pad(s string, n int) string {
	s = Truncate(s, n)
	if w := lipgloss.Width(s); w < n {
		s += strings.Repeat(" ", n-w)
	}
	return s
}
