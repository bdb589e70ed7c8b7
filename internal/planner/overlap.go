package planner

import (
	"sort"

	"github.com/alexanderramin/cursada/internal/domain"
)

type OverlapKind string

const (
	// OverlapMeets marks two meetings of different sections at the same time.
	OverlapMeets OverlapKind = "meet_meet"
	// OverlapGrayZone marks a meeting inside a user's busy interval.
	OverlapGrayZone OverlapKind = "meet_grayzone"
)

// Overlap is the shared interval of two placed items on the same day.
type Overlap struct {
	Kind     OverlapKind
	A        string
	B        string
	Day      int
	StartMin int
	EndMin   int
}

// Overlaps reports every pair of meetings from different sections that
// intersect, and every meeting that intersects a gray zone. Touching
// intervals (one ends when the other starts) do not overlap. The result is
// sorted by day, start minute, then ids.
func Overlaps(meets []domain.Meet, zones []domain.GrayZone) []Overlap {
	var out []Overlap
	for i := 0; i < len(meets); i++ {
		a := meets[i]
		for j := i + 1; j < len(meets); j++ {
			b := meets[j]
			if a.SectionID == b.SectionID || a.DayNum != b.DayNum {
				continue
			}
			if s, e, ok := intersect(a.StartMin, a.EndMin, b.StartMin, b.EndMin); ok {
				out = append(out, Overlap{Kind: OverlapMeets, A: a.ID, B: b.ID, Day: a.DayNum, StartMin: s, EndMin: e})
			}
		}
		for _, z := range zones {
			if a.DayNum != z.DayNum {
				continue
			}
			if s, e, ok := intersect(a.StartMin, a.EndMin, z.StartMin, z.EndMin); ok {
				out = append(out, Overlap{Kind: OverlapGrayZone, A: a.ID, B: z.ID, Day: a.DayNum, StartMin: s, EndMin: e})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].StartMin != out[j].StartMin {
			return out[i].StartMin < out[j].StartMin
		}
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

func intersect(s1, e1, s2, e2 int) (int, int, bool) {
	s, e := max(s1, s2), min(e1, e2)
	return s, e, s < e
}
