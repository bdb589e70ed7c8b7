package domain

import "sort"

// IDSet is a set of section ids. Treat values as immutable: With and Without
// return a fresh set and leave the receiver untouched.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s IDSet) Clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

func (s IDSet) With(ids ...string) IDSet {
	c := s.Clone()
	for _, id := range ids {
		c[id] = struct{}{}
	}
	return c
}

func (s IDSet) Without(ids ...string) IDSet {
	c := s.Clone()
	for _, id := range ids {
		delete(c, id)
	}
	return c
}

// Toggle adds id when absent and removes it when present.
func (s IDSet) Toggle(id string) IDSet {
	if s.Has(id) {
		return s.Without(id)
	}
	return s.With(id)
}

// ContainsAll reports whether every id of other is in s.
func (s IDSet) ContainsAll(other IDSet) bool {
	for id := range other {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same ids.
func (s IDSet) Equal(other IDSet) bool {
	return len(s) == len(other) && s.ContainsAll(other)
}
