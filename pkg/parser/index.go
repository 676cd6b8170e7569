package parser

import (
	"bufio"
	"io"
	"strconv"
)

// IndexInput is the parsed learned index input.
type IndexInput struct {
	Keys    []int64
	Queries []int64

	// Truncated is set when reading stopped at a token that is not an integer.
	Truncated bool
}

// ParseIndex reads whitespace separated integers. The first datasetSize of
// them are the dataset and the rest are queries. Short input leaves a smaller
// dataset and no queries.
func ParseIndex(r io.Reader, datasetSize int) (*IndexInput, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	in := &IndexInput{Keys: make([]int64, 0, datasetSize)}
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			in.Truncated = true
			break
		}
		if len(in.Keys) < datasetSize {
			in.Keys = append(in.Keys, v)
		} else {
			in.Queries = append(in.Queries, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return in, nil
}
