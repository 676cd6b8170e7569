package storage

import (
	"slices"
)

// SortedStore holds the integer dataset of the learned index. Values are
// copied on load and sorted in place by Sort.
type SortedStore struct {
	values []int64
	sorted bool
}

// NewSortedStore copies values into a store bounded by maxKeys.
func NewSortedStore(values []int64, maxKeys int) (*SortedStore, error) {
	if len(values) > maxKeys {
		return nil, NewError("NewSortedStore").Dataset().
			Contextf("%d values, limit %d", len(values), maxKeys).Cause(ErrCapacityExceeded).Err()
	}
	return &SortedStore{
		values: slices.Clone(values),
		sorted: slices.IsSorted(values),
	}, nil
}

// Sort orders the values ascending in place. slices.Sort is pattern-defeating
// quicksort, a partition-based in-place sort; equal keys are interchangeable.
func (s *SortedStore) Sort() {
	if s.sorted {
		return
	}
	slices.Sort(s.values)
	s.sorted = true
}

// IsSorted reports whether the values are in ascending order.
func (s *SortedStore) IsSorted() bool {
	return s.sorted
}

// Values returns the backing slice. Callers must not modify it.
func (s *SortedStore) Values() []int64 {
	return s.values
}

// Len returns the number of values.
func (s *SortedStore) Len() int {
	return len(s.values)
}

// At returns the value at index i.
func (s *SortedStore) At(i int) (int64, error) {
	if i < 0 || i >= len(s.values) {
		return 0, NewError("At").Dataset().Contextf("index %d", i).Cause(ErrPositionOutOfRange).Err()
	}
	return s.values[i], nil
}

// Bounds returns the minimum and maximum of a sorted, non-empty store.
func (s *SortedStore) Bounds() (lo, hi int64, ok bool) {
	if len(s.values) == 0 || !s.sorted {
		return 0, 0, false
	}
	return s.values[0], s.values[len(s.values)-1], true
}
