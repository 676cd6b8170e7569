package parser

import (
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// mappedFile reads a memory-mapped file sequentially.
type mappedFile struct {
	*io.SectionReader
	ra *mmap.ReaderAt
}

func (f *mappedFile) Close() error {
	return f.ra.Close()
}

// Open returns a reader over path. "-" and "" read standard input; any other
// path is memory-mapped.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &mappedFile{
		SectionReader: io.NewSectionReader(ra, 0, int64(ra.Len())),
		ra:            ra,
	}, nil
}
