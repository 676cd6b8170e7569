package report

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-graphlab/pkg/learnedindex"
)

// KeysPerLine is how many dataset keys the index report puts on one line.
const KeysPerLine = 10

func int64s(values []int64) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range values {
			if !yield(strconv.FormatInt(v, 10)) {
				return
			}
		}
	}
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " ")
}

// Dataset writes index stage 1: the sorted keys.
func (w *Writer) Dataset(sorted []int64) {
	w.Header(1)
	w.printf("Number of keys: %d\n", len(sorted))
	w.wrapped(int64s(sorted), KeysPerLine)
	w.printf("\n")
}

// Segments writes index stage 2: one line per fitted segment.
func (w *Writer) Segments(ix *learnedindex.Index) {
	w.Header(2)
	segments := ix.Segments()
	w.printf("Target error: %d\n", ix.TargetError())
	w.printf("Number of segments: %d\n", len(segments))
	for i, s := range segments {
		w.printf("Segment %d: [%d, %d] a=%d b=%d span=%d max=%d\n", i, s.Start, s.End, s.A, s.B, s.Span, s.Max)
	}
	w.printf("\n")
}

// Lookups writes index stage 3: the trace and outcome of every query.
func (w *Writer) Lookups(results []learnedindex.Result) {
	w.Header(3)
	for _, r := range results {
		w.printf("%s\n", FormatLookup(r))
	}
}

// FormatLookup renders one lookup on a single line.
func FormatLookup(r learnedindex.Result) string {
	if r.OutOfRange {
		return fmt.Sprintf("Query %d: out of range; not found", r.Key)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Query %d: segments %s -> %d; predicted %d; window [%d, %d] %s; ",
		r.Key, joinInts(r.SegmentProbes()), r.Segment, r.Predicted, r.Low, r.High, joinInts(r.WindowProbes()))
	if r.Found {
		fmt.Fprintf(&b, "found at %d", r.Position)
	} else {
		b.WriteString("not found")
	}
	return b.String()
}
