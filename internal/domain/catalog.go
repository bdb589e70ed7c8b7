package domain

import (
	"sort"
	"strings"
)

// Catedra is a chair: one lead instructor's offering of a course within a
// program. It is identified by (Program, CatedraID).
type Catedra struct {
	ID             string  `json:"id"`
	Program        Program `json:"program"`
	ProgramName    string  `json:"programName"`
	CatedraID      int     `json:"catedraId"`
	ChairLabel     string  `json:"chairLabel"`
	DocenteTitular string  `json:"docenteTitular"`
	MateriaID      string  `json:"materiaId"`
	MateriaCode    int     `json:"materiaCode"`
	MateriaName    string  `json:"materiaName"`
}

// Requirement names a lecture or seminar section, by label, that must be
// taken together with a practical of the same chair.
type Requirement struct {
	Kind  SectionKind `json:"tipo"`
	Label string      `json:"label"`
}

type Section struct {
	ID          string        `json:"id"`
	TermID      string        `json:"termId"`
	Program     Program       `json:"program"`
	ProgramName string        `json:"programName"`
	CatedraID   int           `json:"catedraId"`
	MateriaID   string        `json:"materiaId"`
	MateriaCode int           `json:"materiaCode"`
	MateriaName string        `json:"materiaName"`
	Kind        SectionKind   `json:"tipo"`
	Label       string        `json:"sectionLabel"`
	Docentes    []string      `json:"docentes"`
	Vacantes    *int          `json:"vacantes"`
	Oblig       *string       `json:"oblig"`
	Requires    []Requirement `json:"requires"`
	Sedes       []string      `json:"sedes"`
	Aulas       []string      `json:"aulas"`
	MeetsCount  int           `json:"meetsCount"`
	UpdatedAt   int64         `json:"updatedAt"`
}

// IsPractical reports whether the section is one a student picks directly.
func (s *Section) IsPractical() bool {
	return s.Kind == KindPractical
}

// UniqueDocentes returns the instructor names with duplicates removed,
// preserving first-seen order.
func (s *Section) UniqueDocentes() []string {
	seen := make(map[string]bool, len(s.Docentes))
	out := make([]string, 0, len(s.Docentes))
	for _, d := range s.Docentes {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Meet is one weekly time slot of a section.
type Meet struct {
	ID        string      `json:"id" validate:"required"`
	SectionID string      `json:"sectionId" validate:"required"`
	TermID    string      `json:"termId"`
	Program   Program     `json:"program"`
	CatedraID int         `json:"catedraId"`
	Kind      SectionKind `json:"tipo"`
	Label     string      `json:"sectionLabel"`
	DayName   string      `json:"dayName"`
	DayNum    int         `json:"dayNum" validate:"min=1,max=6"`
	Start     string      `json:"start"`
	End       string      `json:"end"`
	StartMin  int         `json:"startMin" validate:"min=0,max=1440"`
	EndMin    int         `json:"endMin" validate:"max=1440,gtfield=StartMin"`
	AulaCode  string      `json:"aulaCode"`
	SedeCode  string      `json:"sedeCode"`
	Observ    *string     `json:"observ"`
}

// Catalog is the immutable per-term dataset. Lookups build their indexes
// on demand; callers that need repeated lookups should keep the result.
type Catalog struct {
	Term     string
	Chairs   []Catedra
	Sections []Section
	Meets    []Meet
}

// Empty reports whether nothing has been loaded for the term.
func (c *Catalog) Empty() bool {
	return c == nil || (len(c.Chairs) == 0 && len(c.Sections) == 0 && len(c.Meets) == 0)
}

// SectionByID returns the first section with the given id.
func (c *Catalog) SectionByID(id string) (*Section, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// PracticalIDs returns the ids of every practical section in the catalog.
func (c *Catalog) PracticalIDs() IDSet {
	ids := NewIDSet()
	if c == nil {
		return ids
	}
	for i := range c.Sections {
		if c.Sections[i].IsPractical() {
			ids[c.Sections[i].ID] = struct{}{}
		}
	}
	return ids
}

// MeetsBySection groups meetings by their section id, keeping catalog order.
func (c *Catalog) MeetsBySection() map[string][]Meet {
	out := make(map[string][]Meet)
	if c == nil {
		return out
	}
	for _, m := range c.Meets {
		out[m.SectionID] = append(out[m.SectionID], m)
	}
	return out
}

// MeetsFor returns the meetings of the sections in ids, in catalog order.
func (c *Catalog) MeetsFor(ids IDSet) []Meet {
	if c == nil || len(ids) == 0 {
		return nil
	}
	var out []Meet
	for _, m := range c.Meets {
		if ids.Has(m.SectionID) {
			out = append(out, m)
		}
	}
	return out
}

// ChairsByProgram lists a program's chairs sorted by course name, then chair
// number. A non-empty query keeps only chairs whose course name or lead
// instructor contains it, ignoring case and accents.
func (c *Catalog) ChairsByProgram(p Program, query string) []Catedra {
	if c == nil {
		return nil
	}
	q := FoldText(query)
	var out []Catedra
	for _, ch := range c.Chairs {
		if ch.Program != p {
			continue
		}
		if q != "" && !strings.Contains(FoldText(ch.MateriaName+" "+ch.DocenteTitular), q) {
			continue
		}
		out = append(out, ch)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MateriaName != out[j].MateriaName {
			return out[i].MateriaName < out[j].MateriaName
		}
		return out[i].CatedraID < out[j].CatedraID
	})
	return out
}

// SectionsForChair returns every section of the chair in catalog order.
func (c *Catalog) SectionsForChair(p Program, catedraID int) []Section {
	if c == nil {
		return nil
	}
	var out []Section
	for _, s := range c.Sections {
		if s.Program == p && s.CatedraID == catedraID {
			out = append(out, s)
		}
	}
	return out
}

// PracticalsForChair returns the chair's practical sections sorted by label.
func (c *Catalog) PracticalsForChair(p Program, catedraID int) []Section {
	var out []Section
	for _, s := range c.SectionsForChair(p, catedraID) {
		if s.IsPractical() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
