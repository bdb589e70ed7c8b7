package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cursada/internal/domain"
)

// FormatChairs renders the chair list of a program.
func FormatChairs(p domain.Program, chairs []domain.Catedra) string {
	var b strings.Builder
	b.WriteString(Header("Cátedras") + "\n")
	b.WriteString(ProgramBadge(p) + "\n\n")
	if len(chairs) == 0 {
		b.WriteString(Dim("No hay cátedras para este filtro.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(chairs))
	for _, ch := range chairs {
		rows = append(rows, []string{
			StyleBold.Render(strconv.Itoa(ch.CatedraID)),
			ch.MateriaName,
			ch.DocenteTitular,
		})
	}
	b.WriteString(RenderTable([]string{"#", "MATERIA", "TITULAR"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%d cátedras", len(chairs))) + "\n")
	return b.String()
}

// FormatChairSections renders every section of a chair grouped by kind, with
// each practical's requirements and whether it is selected.
func FormatChairSections(cat *domain.Catalog, p domain.Program, catedraID int, selected domain.IDSet) string {
	sections := cat.SectionsForChair(p, catedraID)
	var b strings.Builder
	title := fmt.Sprintf("Cátedra %d", catedraID)
	if len(sections) > 0 {
		title = fmt.Sprintf("%s · Cátedra %d", sections[0].MateriaName, catedraID)
	}
	b.WriteString(Header(title) + "\n\n")
	if len(sections) == 0 {
		b.WriteString(Dim("Sin comisiones.") + "\n")
		return b.String()
	}

	by := cat.MeetsBySection()
	rows := make([][]string, 0, len(sections))
	for _, kind := range []domain.SectionKind{domain.KindLecture, domain.KindSeminar, domain.KindPractical} {
		for _, s := range sections {
			if s.Kind != kind {
				continue
			}
			mark := " "
			if selected.Has(s.ID) {
				mark = StyleGreen.Render("●")
			}
			rows = append(rows, []string{
				mark,
				KindStyle(s.Kind).Render(string(s.Kind) + " " + s.Label),
				MeetSlots(by[s.ID]),
				strings.Join(s.UniqueDocentes(), ", "),
				Vacancies(s.Vacantes),
				requirementList(s.Requires),
				Dim(s.ID),
			})
		}
	}
	b.WriteString(RenderTable([]string{"", "COMISIÓN", "HORARIO", "DOCENTES", "VAC", "REQUIERE", "ID"}, rows))
	return b.String()
}

func requirementList(reqs []domain.Requirement) string {
	if len(reqs) == 0 {
		return ""
	}
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = string(r.Kind) + " " + r.Label
	}
	return strings.Join(parts, " + ")
}
