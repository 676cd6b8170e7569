// Package learnedindex fits piecewise-linear position models over a sorted
// integer array and answers exact-match lookups with a binary search bounded
// by the model's error.
package learnedindex

import (
	"slices"
)

// BuildSegments greedily covers values with segments whose prediction error
// stays within targetErr. values must be sorted ascending.
//
// A segment opens at index s predicting s. Each next index i is tested
// against the current fit; it joins the segment if its error is within
// targetErr and the refit through (s, i) keeps every covered index within
// targetErr. Otherwise the segment closes at the last accepted index and a
// new one opens at i. One pass, no backtracking.
func BuildSegments(values []int64, targetErr int) ([]Segment, error) {
	if len(values) == 0 {
		return nil, ErrEmptyDataset
	}
	if targetErr < 0 {
		return nil, ErrNegativeError
	}
	if !slices.IsSorted(values) {
		return nil, ErrUnsorted
	}

	var segments []Segment
	current := fit(values, 0, 0)

	for i := 1; i < len(values); i++ {
		if absInt(i-current.Predict(values[i])) <= targetErr {
			candidate := fit(values, current.Start, i)
			if candidate.maxError(values) <= targetErr {
				current = candidate
				continue
			}
		}
		segments = append(segments, current)
		current = fit(values, i, i)
	}

	return append(segments, current), nil
}
