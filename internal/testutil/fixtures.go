package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/cursada/internal/domain"
)

// TestTerm is the term used by fixtures unless overridden.
const TestTerm = "2025-2"

var testMeetCounter atomic.Int64

// Section options
type SectionOption func(*domain.Section)

func WithProgram(p domain.Program) SectionOption {
	return func(s *domain.Section) {
		s.Program = p
		s.ProgramName = p.Name()
	}
}

func WithSectionID(id string) SectionOption {
	return func(s *domain.Section) {
		s.ID = id
	}
}

func WithRequires(reqs ...domain.Requirement) SectionOption {
	return func(s *domain.Section) {
		s.Requires = append(s.Requires, reqs...)
	}
}

func WithMateria(name string) SectionOption {
	return func(s *domain.Section) {
		s.MateriaName = name
	}
}

func WithDocentes(names ...string) SectionOption {
	return func(s *domain.Section) {
		s.Docentes = names
	}
}

func WithAulas(aulas ...string) SectionOption {
	return func(s *domain.Section) {
		s.Aulas = aulas
	}
}

func WithOblig(o string) SectionOption {
	return func(s *domain.Section) {
		s.Oblig = &o
	}
}

// Req is shorthand for a requirement literal.
func Req(kind domain.SectionKind, label string) domain.Requirement {
	return domain.Requirement{Kind: kind, Label: label}
}

// NewTestSection builds a section whose id follows the published
// {term}_{program}_{catedraId}_{tipo}_{label} convention.
func NewTestSection(catedraID int, kind domain.SectionKind, label string, opts ...SectionOption) domain.Section {
	s := domain.Section{
		TermID:      TestTerm,
		Program:     domain.ProgramPS,
		ProgramName: domain.ProgramPS.Name(),
		CatedraID:   catedraID,
		MateriaName: fmt.Sprintf("Materia %d", catedraID),
		Kind:        kind,
		Label:       label,
		Docentes:    []string{"Docente"},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.ID == "" {
		s.ID = fmt.Sprintf("%s_%s_%d_%s_%s", s.TermID, s.Program, s.CatedraID, s.Kind, s.Label)
	}
	return s
}

// NewTestMeet builds a meeting for sectionID on a day between two "HH:MM" times.
func NewTestMeet(sectionID string, day int, start, end string) domain.Meet {
	startMin, err := domain.ParseClock(start)
	if err != nil {
		panic(err)
	}
	endMin, err := domain.ParseClock(end)
	if err != nil {
		panic(err)
	}
	n := testMeetCounter.Add(1)
	return domain.Meet{
		ID:        fmt.Sprintf("%s_%d", sectionID, n),
		SectionID: sectionID,
		TermID:    TestTerm,
		DayName:   domain.DayLabel(day),
		DayNum:    day,
		Start:     start,
		End:       end,
		StartMin:  startMin,
		EndMin:    endMin,
		AulaCode:  "HY-014",
		SedeCode:  "HY",
	}
}

// NewTestChair builds a chair of the PS program.
func NewTestChair(catedraID int, materia, titular string) domain.Catedra {
	return domain.Catedra{
		ID:             fmt.Sprintf("PS-%d", catedraID),
		Program:        domain.ProgramPS,
		ProgramName:    domain.ProgramPS.Name(),
		CatedraID:      catedraID,
		DocenteTitular: titular,
		MateriaName:    materia,
	}
}

// NewTestZone builds a gray zone with a fixed id, bypassing validation so
// tests can persist invalid records on purpose.
func NewTestZone(id string, day, startMin, endMin int) domain.GrayZone {
	return domain.GrayZone{ID: id, DayNum: day, StartMin: startMin, EndMin: endMin}
}

// SampleCatalog is a small two-chair catalog:
//
//	chair 10: Teo A (Mon 10:00-12:00), Sem S1 (Wed 14:00-15:30),
//	          Prac P1 requires Teo A + Sem S1 (Mon 09:00-10:30),
//	          Prac P2 requires Teo A + Sem MISSING (Tue 18:00-19:30)
//	chair 20: Teo A (Thu 07:00-09:00), Prac P1 requires Teo A (Fri 20:00-23:00)
func SampleCatalog() *domain.Catalog {
	const materia10, materia20 = "Psicología General", "Neurofisiología"
	in10, in20 := WithMateria(materia10), WithMateria(materia20)

	teoA := NewTestSection(10, domain.KindLecture, "A", in10)
	semS1 := NewTestSection(10, domain.KindSeminar, "S1", in10)
	p1 := NewTestSection(10, domain.KindPractical, "P1", in10,
		WithRequires(Req(domain.KindLecture, "A"), Req(domain.KindSeminar, "S1")))
	p2 := NewTestSection(10, domain.KindPractical, "P2", in10,
		WithRequires(Req(domain.KindLecture, "A"), Req(domain.KindSeminar, "MISSING")))
	teoA20 := NewTestSection(20, domain.KindLecture, "A", in20)
	p1c20 := NewTestSection(20, domain.KindPractical, "P1", in20, WithRequires(Req(domain.KindLecture, "A")))

	return &domain.Catalog{
		Term: TestTerm,
		Chairs: []domain.Catedra{
			NewTestChair(10, materia10, "Ana Núñez"),
			NewTestChair(20, materia20, "Luis Gómez"),
		},
		Sections: []domain.Section{teoA, semS1, p1, p2, teoA20, p1c20},
		Meets: []domain.Meet{
			NewTestMeet(teoA.ID, 1, "10:00", "12:00"),
			NewTestMeet(semS1.ID, 3, "14:00", "15:30"),
			NewTestMeet(p1.ID, 1, "09:00", "10:30"),
			NewTestMeet(p2.ID, 2, "18:00", "19:30"),
			NewTestMeet(teoA20.ID, 4, "07:00", "09:00"),
			NewTestMeet(p1c20.ID, 5, "20:00", "23:00"),
		},
	}
}
