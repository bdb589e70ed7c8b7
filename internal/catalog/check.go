package catalog

import (
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/planner"
)

// MeetIssue is a meeting that fails validation or points at no section.
type MeetIssue struct {
	MeetID    string
	SectionID string
	Reason    string
}

// Report summarises the data quality of a loaded catalog. The planner
// tolerates every issue listed here; the report exists for data maintainers.
type Report struct {
	Term          string
	Chairs        int
	Sections      int
	Practicals    int
	Meets         int
	InvalidMeets  []MeetIssue
	Unresolved    []planner.UnresolvedRequirement
	DuplicateKeys []string
}

// OK reports whether no issues were found.
func (r Report) OK() bool {
	return len(r.InvalidMeets) == 0 && len(r.Unresolved) == 0 && len(r.DuplicateKeys) == 0
}

// Check inspects cat for malformed meetings, orphan meetings, requirements
// that resolve to nothing, and duplicate (chair, kind, label) keys.
func Check(cat *domain.Catalog) Report {
	r := Report{}
	if cat == nil {
		return r
	}
	r.Term = cat.Term
	r.Chairs = len(cat.Chairs)
	r.Sections = len(cat.Sections)
	r.Practicals = len(cat.PracticalIDs())
	r.Meets = len(cat.Meets)

	known := make(map[string]bool, len(cat.Sections))
	for _, s := range cat.Sections {
		known[s.ID] = true
	}
	for _, m := range cat.Meets {
		if err := domain.ValidateMeet(m); err != nil {
			r.InvalidMeets = append(r.InvalidMeets, MeetIssue{MeetID: m.ID, SectionID: m.SectionID, Reason: err.Error()})
			continue
		}
		if !known[m.SectionID] {
			r.InvalidMeets = append(r.InvalidMeets, MeetIssue{MeetID: m.ID, SectionID: m.SectionID, Reason: "unknown section"})
		}
	}

	r.Unresolved = planner.UnresolvedRequirements(cat.Sections)
	r.DuplicateKeys = planner.DuplicateKeys(cat.Sections)
	return r
}
