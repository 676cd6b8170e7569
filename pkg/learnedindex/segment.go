package learnedindex

// Segment maps keys of one contiguous index range [Start, End] to predicted
// positions with the line through (values[Start], Start) and
// (values[End], End):
//
//	predicted = ceil((Span*key + A) / B)
//
// where B = values[End]-values[Start], A = values[End]*Start - values[Start]*End
// and Span = End-Start. For a two-point segment Span is 1 and this is
// ceil((key + A) / B). When B is 0 (a single element, or a run of equal
// values) the segment predicts Start.
type Segment struct {
	Start, End int
	A, B, Span int64
	Max        int64 // values[End], the key used to locate the segment
}

// fit returns the segment through the endpoints first and last.
func fit(values []int64, first, last int) Segment {
	vf, vl := values[first], values[last]
	return Segment{
		Start: first,
		End:   last,
		A:     vl*int64(first) - vf*int64(last),
		B:     vl - vf,
		Span:  int64(last - first),
		Max:   vl,
	}
}

// Predict returns the position the segment's function assigns to key.
func (s Segment) Predict(key int64) int {
	if s.B == 0 {
		return s.Start
	}
	return int(ceilDiv(s.Span*key+s.A, s.B))
}

// Len returns the number of indices the segment covers.
func (s Segment) Len() int {
	return s.End - s.Start + 1
}

// maxError returns the largest |i - Predict(values[i])| over the segment.
func (s Segment) maxError(values []int64) int {
	worst := 0
	for i := s.Start; i <= s.End; i++ {
		if e := absInt(i - s.Predict(values[i])); e > worst {
			worst = e
		}
	}
	return worst
}

// ceilDiv rounds n/d towards positive infinity. d must be positive.
func ceilDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
