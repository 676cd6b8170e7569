// Package sortedset provides a duplicate-free sequence of strings kept in
// byte-wise ascending order.
package sortedset

import (
	"iter"
	"slices"
)

// Set is a sorted, duplicate-free sequence of strings. The zero value is an
// empty set ready to use. Comparison is exact and case-sensitive.
type Set struct {
	items []string
}

// New creates a set with room for capacity elements.
func New(capacity int) *Set {
	return &Set{items: make([]string, 0, capacity)}
}

// Insert adds s unless an equal string is present. It scans for the first
// element >= s and places s in front of it, or at the end if there is none.
// Returns true if s was added.
func (s *Set) Insert(value string) bool {
	i := 0
	for i < len(s.items) && s.items[i] < value {
		i++
	}
	if i < len(s.items) && s.items[i] == value {
		return false
	}
	s.items = slices.Insert(s.items, i, value)
	return true
}

// InsertAll inserts every value in order and returns how many were new.
func (s *Set) InsertAll(values ...string) int {
	added := 0
	for _, v := range values {
		if s.Insert(v) {
			added++
		}
	}
	return added
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value string) bool {
	_, found := slices.BinarySearch(s.items, value)
	return found
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.items)
}

// All yields the elements in ascending order. The sequence can be ranged
// over any number of times and does not modify the set.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements in ascending order.
func (s *Set) Slice() []string {
	return slices.Clone(s.items)
}
