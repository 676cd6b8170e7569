package learnedindex

import (
	"iter"
	"slices"
	"sort"
)

// Phase names the search a probe belongs to.
type Phase int

const (
	PhaseSegment Phase = iota // lower-bound search over segment maxima
	PhaseWindow               // binary search inside the predicted window
)

func (p Phase) String() string {
	switch p {
	case PhaseSegment:
		return "segment"
	case PhaseWindow:
		return "window"
	default:
		return "unknown"
	}
}

// Probe is one value inspected during a lookup. Index is the segment number
// for PhaseSegment and the dataset position for PhaseWindow.
type Probe struct {
	Phase Phase
	Index int
	Value int64
}

// Result describes one lookup. Not finding a key is a normal outcome.
type Result struct {
	Key        int64
	Found      bool
	Position   int  // -1 unless Found
	OutOfRange bool // key outside [min, max]; nothing else was evaluated
	Segment    int  // -1 when OutOfRange
	Predicted  int
	Low, High  int // inclusive search window
	Probes     []Probe
}

// Trace yields every probe in the order it was made.
func (r Result) Trace() iter.Seq[Probe] {
	return func(yield func(Probe) bool) {
		for _, p := range r.Probes {
			if !yield(p) {
				return
			}
		}
	}
}

// SegmentProbes returns the segment maxima visited while locating the segment.
func (r Result) SegmentProbes() []int64 {
	return r.probeValues(PhaseSegment)
}

// WindowProbes returns the dataset values visited inside the window.
func (r Result) WindowProbes() []int64 {
	return r.probeValues(PhaseWindow)
}

func (r Result) probeValues(phase Phase) []int64 {
	var out []int64
	for _, p := range r.Probes {
		if p.Phase == phase {
			out = append(out, p.Value)
		}
	}
	return out
}

// Index is a learned index over an immutable sorted dataset.
type Index struct {
	values    []int64
	segments  []Segment
	targetErr int
}

// New builds the segments for values, which must be sorted ascending and
// non-empty. values is retained, not copied.
func New(values []int64, targetErr int) (*Index, error) {
	segments, err := BuildSegments(values, targetErr)
	if err != nil {
		return nil, err
	}
	return &Index{values: values, segments: segments, targetErr: targetErr}, nil
}

// Segments returns a copy of the fitted segments in index order.
func (ix *Index) Segments() []Segment {
	return slices.Clone(ix.segments)
}

// Len returns the number of keys.
func (ix *Index) Len() int {
	return len(ix.values)
}

// TargetError returns the error bound the index was built with.
func (ix *Index) TargetError() int {
	return ix.targetErr
}

// Lookup searches for key. The window around the prediction is the only
// place searched, so a key whose prediction misses its true position by more
// than the target error is reported as not found.
func (ix *Index) Lookup(key int64) Result {
	res := Result{Key: key, Position: -1, Segment: -1}

	n := len(ix.values)
	if key < ix.values[0] || key > ix.values[n-1] {
		res.OutOfRange = true
		return res
	}

	res.Segment = sort.Search(len(ix.segments), func(i int) bool {
		res.Probes = append(res.Probes, Probe{Phase: PhaseSegment, Index: i, Value: ix.segments[i].Max})
		return ix.segments[i].Max >= key
	})

	res.Predicted = ix.segments[res.Segment].Predict(key)
	res.Low = max(0, res.Predicted-ix.targetErr)
	res.High = min(n-1, res.Predicted+ix.targetErr)

	lo, hi := res.Low, res.High+1
	for lo < hi {
		mid := lo + (hi-lo)/2
		v := ix.values[mid]
		res.Probes = append(res.Probes, Probe{Phase: PhaseWindow, Index: mid, Value: v})
		switch {
		case v == key:
			res.Found = true
			res.Position = mid
			return res
		case v < key:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return res
}
