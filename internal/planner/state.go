package planner

import (
	"github.com/alexanderramin/cursada/internal/domain"
)

// State is an immutable snapshot of everything the planner view depends on.
// Update returns a new State; the previous one stays valid.
type State struct {
	Term      string
	Program   domain.Program
	Catalog   *domain.Catalog
	Selected  domain.IDSet
	GrayZones []domain.GrayZone
	HoverID   string
	Viewport  Viewport
}

// NewState returns an empty state for a term.
func NewState(term string, program domain.Program) State {
	return State{
		Term:     term,
		Program:  program,
		Catalog:  &domain.Catalog{Term: term},
		Selected: domain.NewIDSet(),
		Viewport: DefaultViewport,
	}
}

// Event is a single user or loader action applied by Update.
type Event interface {
	apply(State) State
}

// Update applies ev to s and returns the resulting snapshot.
func Update(s State, ev Event) State {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}

// CatalogLoaded replaces the catalog. A nil catalog stands for a failed
// load and leaves the view empty.
type CatalogLoaded struct{ Catalog *domain.Catalog }

func (e CatalogLoaded) apply(s State) State {
	if e.Catalog == nil {
		s.Catalog = &domain.Catalog{Term: s.Term}
	} else {
		s.Catalog = e.Catalog
	}
	return s
}

// SelectionRestored replaces the whole selection, e.g. from local storage.
type SelectionRestored struct{ IDs domain.IDSet }

func (e SelectionRestored) apply(s State) State {
	s.Selected = e.IDs.Clone()
	return s
}

// GrayZonesRestored replaces the gray zone list.
type GrayZonesRestored struct{ Zones []domain.GrayZone }

func (e GrayZonesRestored) apply(s State) State {
	s.GrayZones = append([]domain.GrayZone(nil), e.Zones...)
	return s
}

// ProgramChanged switches program and clears the selection and hover.
type ProgramChanged struct{ Program domain.Program }

func (e ProgramChanged) apply(s State) State {
	if e.Program == s.Program {
		return s
	}
	s.Program = e.Program
	s.Selected = domain.NewIDSet()
	s.HoverID = ""
	return s
}

// PracticalToggled adds or removes a practical from the selection.
type PracticalToggled struct{ ID string }

func (e PracticalToggled) apply(s State) State {
	s.Selected = s.Selected.Toggle(e.ID)
	return s
}

// PracticalRemoved drops a practical from the selection if present.
type PracticalRemoved struct{ ID string }

func (e PracticalRemoved) apply(s State) State {
	s.Selected = s.Selected.Without(e.ID)
	return s
}

// GrayZoneAdded appends a zone. Invalid zones are ignored.
type GrayZoneAdded struct{ Zone domain.GrayZone }

func (e GrayZoneAdded) apply(s State) State {
	if e.Zone.Validate() != nil {
		return s
	}
	next := make([]domain.GrayZone, 0, len(s.GrayZones)+1)
	next = append(next, s.GrayZones...)
	s.GrayZones = append(next, e.Zone)
	return s
}

// GrayZoneRemoved deletes the zone with the given id.
type GrayZoneRemoved struct{ ID string }

func (e GrayZoneRemoved) apply(s State) State {
	next := make([]domain.GrayZone, 0, len(s.GrayZones))
	for _, z := range s.GrayZones {
		if z.ID != e.ID {
			next = append(next, z)
		}
	}
	s.GrayZones = next
	return s
}

// Hovered sets the practical under focus. An empty ID clears it.
type Hovered struct{ ID string }

func (e Hovered) apply(s State) State {
	s.HoverID = e.ID
	return s
}

// Resized updates the viewport height, keeping the paddings.
type Resized struct{ Height float64 }

func (e Resized) apply(s State) State {
	s.Viewport.Height = e.Height
	return s
}

// Plan is everything derived from a State for rendering.
type Plan struct {
	Resolved  []domain.Section
	Meets     []domain.Meet
	Window    Window
	Blocks    []Block
	Preview   []Block
	GrayZones []Block
	HourLines []HourLine
	Overlaps  []Overlap
}

// Derive recomputes the plan from scratch. It is pure: equal states give
// equal plans.
func Derive(s State) Plan {
	cat := s.Catalog
	if cat == nil {
		cat = &domain.Catalog{Term: s.Term}
	}
	resolved := ResolveSections(s.Selected, cat.Sections)
	ids := domain.NewIDSet()
	for _, sec := range resolved {
		ids[sec.ID] = struct{}{}
	}
	meets := cat.MeetsFor(ids)
	w := ComputeWindow(meets)

	return Plan{
		Resolved:  resolved,
		Meets:     meets,
		Window:    w,
		Blocks:    Layout(meets, w, s.Viewport),
		Preview:   LayoutPreview(PreviewMeets(cat, s.HoverID), w, s.Viewport),
		GrayZones: LayoutGrayZones(s.GrayZones, w, s.Viewport),
		HourLines: HourLines(w, s.Viewport),
		Overlaps:  Overlaps(meets, s.GrayZones),
	}
}

// PreviewMeets returns the meetings of the hovered practical followed by
// the meetings of its resolved requirements.
func PreviewMeets(cat *domain.Catalog, hoverID string) []domain.Meet {
	if cat == nil || hoverID == "" {
		return nil
	}
	prac, ok := cat.SectionByID(hoverID)
	if !ok {
		return nil
	}
	by := cat.MeetsBySection()
	out := append([]domain.Meet(nil), by[hoverID]...)
	for _, dep := range newSectionIndex(cat.Sections).requirementsOf(prac) {
		out = append(out, by[dep.ID]...)
	}
	return out
}
