package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
)

// FormatPlan renders the grid of a derived plan followed by the resolved
// sections and any overlaps.
func FormatPlan(s planner.State, plan planner.Plan, rows, width int) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Cursada %s", s.Term)) + "\n")
	b.WriteString(ProgramBadge(s.Program) + Dim(fmt.Sprintf(" · %s–%s",
		domain.FormatClock(plan.Window.Start), domain.FormatClock(plan.Window.End))) + "\n\n")

	b.WriteString(WeekGrid{Plan: plan, Catalog: s.Catalog, Rows: rows, Width: width}.Render())
	b.WriteString("\n\n")

	if len(plan.Resolved) == 0 {
		b.WriteString(Dim("No hay prácticos elegidos. Usá `cursada pick <id>`.") + "\n")
	} else {
		b.WriteString(FormatResolved(s.Catalog, plan.Resolved))
	}
	if len(plan.Overlaps) > 0 {
		b.WriteString("\n" + FormatOverlaps(s.Catalog, s.GrayZones, plan.Overlaps))
	}
	return b.String()
}

// FormatResolved lists resolved sections with their meeting slots.
func FormatResolved(cat *domain.Catalog, sections []domain.Section) string {
	by := cat.MeetsBySection()
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{
			s.MateriaName,
			KindStyle(s.Kind).Render(string(s.Kind) + " " + s.Label),
			MeetSlots(by[s.ID]),
			Dim(s.ID),
		})
	}
	return RenderTable([]string{"MATERIA", "COMISIÓN", "HORARIO", "ID"}, rows)
}

// FormatOverlaps describes each overlap in one line.
func FormatOverlaps(cat *domain.Catalog, zones []domain.GrayZone, overlaps []planner.Overlap) string {
	meets := make(map[string]domain.Meet)
	if cat != nil {
		for _, m := range cat.Meets {
			meets[m.ID] = m
		}
	}
	zoneNote := make(map[string]string, len(zones))
	for _, z := range zones {
		zoneNote[z.ID] = z.Note
	}
	describe := func(meetID string) string {
		m, ok := meets[meetID]
		if !ok {
			return meetID
		}
		if sec, ok := cat.SectionByID(m.SectionID); ok {
			return fmt.Sprintf("%s %s %s", sec.MateriaName, sec.Kind, sec.Label)
		}
		return m.SectionID
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("⚠ %d superposiciones", len(overlaps))) + "\n")
	for _, o := range overlaps {
		slot := domain.DayAbbr(o.Day) + " " + TimeRange(o.StartMin, o.EndMin)
		switch o.Kind {
		case planner.OverlapGrayZone:
			other := "zona gris"
			if note := zoneNote[o.B]; note != "" {
				other += " (" + note + ")"
			}
			fmt.Fprintf(&b, "  %s  %s ↔ %s\n", StyleYellow.Render(slot), describe(o.A), Dim(other))
		default:
			fmt.Fprintf(&b, "  %s  %s ↔ %s\n", StyleRed.Render(slot), describe(o.A), describe(o.B))
		}
	}
	return b.String()
}

// FormatGrayZones lists gray zones with their ids.
func FormatGrayZones(zones []domain.GrayZone) string {
	if len(zones) == 0 {
		return Dim("No hay zonas grises.") + "\n"
	}
	rows := make([][]string, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, []string{
			domain.DayLabel(z.DayNum),
			TimeRange(z.StartMin, z.EndMin),
			z.Note,
			Dim(z.ID),
		})
	}
	return RenderTable([]string{"DÍA", "HORARIO", "NOTA", "ID"}, rows)
}
