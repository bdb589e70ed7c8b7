package planner

import "github.com/alexanderramin/cursada/internal/domain"

// sectionKey addresses a section inside a chair. It is a struct so that
// labels containing separator characters can never collide.
type sectionKey struct {
	CatedraID int
	Kind      domain.SectionKind
	Label     string
}

func keyOf(s *domain.Section) sectionKey {
	return sectionKey{CatedraID: s.CatedraID, Kind: s.Kind, Label: s.Label}
}

// sectionIndex resolves sections by id and by (chair, kind, label).
// When two sections share a key the first one in catalog order wins.
type sectionIndex struct {
	byID  map[string]*domain.Section
	byKey map[sectionKey]*domain.Section
}

func newSectionIndex(sections []domain.Section) *sectionIndex {
	idx := &sectionIndex{
		byID:  make(map[string]*domain.Section, len(sections)),
		byKey: make(map[sectionKey]*domain.Section, len(sections)),
	}
	for i := range sections {
		s := &sections[i]
		if _, ok := idx.byID[s.ID]; !ok {
			idx.byID[s.ID] = s
		}
		k := keyOf(s)
		if _, ok := idx.byKey[k]; !ok {
			idx.byKey[k] = s
		}
	}
	return idx
}

// requirementsOf returns the sections a practical's requirements resolve
// to, in declaration order. Unresolvable requirements are skipped.
func (idx *sectionIndex) requirementsOf(prac *domain.Section) []*domain.Section {
	var out []*domain.Section
	for _, req := range prac.Requires {
		dep, ok := idx.byKey[sectionKey{CatedraID: prac.CatedraID, Kind: req.Kind, Label: req.Label}]
		if ok {
			out = append(out, dep)
		}
	}
	return out
}

// Resolve returns the closed set of section ids a schedule must show:
// every selected section found in the catalog plus the lecture and seminar
// sections its requirements name within the same chair.
//
// Selected ids missing from the catalog contribute nothing. Requirements
// with no matching section are dropped. The result never errors.
func Resolve(selected domain.IDSet, sections []domain.Section) domain.IDSet {
	idx := newSectionIndex(sections)
	out := domain.NewIDSet()
	for id := range selected {
		prac, ok := idx.byID[id]
		if !ok {
			continue
		}
		out[prac.ID] = struct{}{}
		for _, dep := range idx.requirementsOf(prac) {
			out[dep.ID] = struct{}{}
		}
	}
	return out
}

// ResolveSections is Resolve followed by a catalog-ordered lookup of the
// resolved sections.
func ResolveSections(selected domain.IDSet, sections []domain.Section) []domain.Section {
	ids := Resolve(selected, sections)
	out := make([]domain.Section, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, s := range sections {
		if ids.Has(s.ID) && !seen[s.ID] {
			seen[s.ID] = true
			out = append(out, s)
		}
	}
	return out
}

// RequirementIDs returns the ids of the sections the given practical pulls
// in, excluding the practical itself. An unknown id yields an empty set.
func RequirementIDs(practicalID string, sections []domain.Section) domain.IDSet {
	idx := newSectionIndex(sections)
	out := domain.NewIDSet()
	prac, ok := idx.byID[practicalID]
	if !ok {
		return out
	}
	for _, dep := range idx.requirementsOf(prac) {
		out[dep.ID] = struct{}{}
	}
	return out
}

// UnresolvedRequirement describes a practical whose declared requirement
// has no matching section in its chair.
type UnresolvedRequirement struct {
	SectionID   string
	CatedraID   int
	Requirement domain.Requirement
}

// UnresolvedRequirements lists every requirement in the catalog that cannot
// be resolved. The planner never reports these; they are a data-quality
// report for whoever publishes the catalog.
func UnresolvedRequirements(sections []domain.Section) []UnresolvedRequirement {
	idx := newSectionIndex(sections)
	var out []UnresolvedRequirement
	for i := range sections {
		s := &sections[i]
		for _, req := range s.Requires {
			if _, ok := idx.byKey[sectionKey{CatedraID: s.CatedraID, Kind: req.Kind, Label: req.Label}]; ok {
				continue
			}
			out = append(out, UnresolvedRequirement{SectionID: s.ID, CatedraID: s.CatedraID, Requirement: req})
		}
	}
	return out
}

// DuplicateKeys lists section ids shadowed by an earlier section with the
// same (chair, kind, label). Resolution always picks the earlier one.
func DuplicateKeys(sections []domain.Section) []string {
	seen := make(map[sectionKey]bool, len(sections))
	var out []string
	for i := range sections {
		k := keyOf(&sections[i])
		if seen[k] {
			out = append(out, sections[i].ID)
			continue
		}
		seen[k] = true
	}
	return out
}
