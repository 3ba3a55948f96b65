// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import "sort"

// Set tracks which members of a table view are checked. Members are
// ints: positional indices for freshly parsed CSV rows, stable IDs
// (YID, RaceId) for backend-owned collections.
type Set struct {
	members map[int]bool
}

// New returns an empty Set.
func New() *Set {
	return &Set{members: make(map[int]bool)}
}

// Of returns a Set containing the given members.
func Of(members ...int) *Set {
	s := New()
	for _, m := range members {
		s.members[m] = true
	}
	return s
}

// Toggle flips membership of i.
func (s *Set) Toggle(i int) {
	if s.members[i] {
		delete(s.members, i)
	} else {
		s.members[i] = true
	}
}

// SelectAll replaces the selection with exactly the given universe.
func (s *Set) SelectAll(universe []int) {
	s.members = make(map[int]bool, len(universe))
	for _, i := range universe {
		s.members[i] = true
	}
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.members = make(map[int]bool)
}

// Has reports whether i is selected.
func (s *Set) Has(i int) bool {
	return s.members[i]
}

// Len returns the number of selected members.
func (s *Set) Len() int {
	return len(s.members)
}

// Members returns the selected members in ascending order.
func (s *Set) Members() []int {
	out := make([]int, 0, len(s.members))
	for i := range s.members {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// AllSelected reports whether the selection equals the universe
// exactly. An empty universe is never "all selected".
func (s *Set) AllSelected(universe []int) bool {
	if len(universe) == 0 || len(s.members) != len(universe) {
		return false
	}
	for _, i := range universe {
		if !s.members[i] {
			return false
		}
	}
	return true
}

// Indeterminate reports whether the selection is a non-empty strict
// subset of the universe. This drives the header checkbox's third
// state.
func (s *Set) Indeterminate(universe []int) bool {
	return len(s.members) > 0 && len(s.members) < len(universe)
}
