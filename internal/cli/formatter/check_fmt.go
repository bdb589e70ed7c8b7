package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cursada/internal/catalog"
)

// FormatReport renders a catalog data-quality report.
func FormatReport(r catalog.Report) string {
	var b strings.Builder
	b.WriteString(Header("Datos "+r.Term) + "\n")
	fmt.Fprintf(&b, "%s cátedras  %s comisiones  %s prácticos  %s encuentros\n\n",
		Bold(fmt.Sprint(r.Chairs)), Bold(fmt.Sprint(r.Sections)),
		Bold(fmt.Sprint(r.Practicals)), Bold(fmt.Sprint(r.Meets)))

	if r.OK() {
		b.WriteString(StyleGreen.Render("✓ sin problemas") + "\n")
		return b.String()
	}

	if len(r.InvalidMeets) > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("Encuentros inválidos (%d)", len(r.InvalidMeets))) + "\n")
		rows := make([][]string, 0, len(r.InvalidMeets))
		for _, m := range r.InvalidMeets {
			rows = append(rows, []string{m.MeetID, m.SectionID, m.Reason})
		}
		b.WriteString(RenderTable([]string{"ENCUENTRO", "COMISIÓN", "MOTIVO"}, rows) + "\n")
	}
	if len(r.Unresolved) > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Requisitos sin resolver (%d)", len(r.Unresolved))) + "\n")
		rows := make([][]string, 0, len(r.Unresolved))
		for _, u := range r.Unresolved {
			rows = append(rows, []string{u.SectionID, fmt.Sprint(u.CatedraID), string(u.Requirement.Kind) + " " + u.Requirement.Label})
		}
		b.WriteString(RenderTable([]string{"PRÁCTICO", "CÁTEDRA", "REQUIERE"}, rows) + "\n")
	}
	if len(r.DuplicateKeys) > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Claves duplicadas (%d)", len(r.DuplicateKeys))) + "\n")
		for _, k := range r.DuplicateKeys {
			b.WriteString("  " + k + "\n")
		}
	}
	return b.String()
}
