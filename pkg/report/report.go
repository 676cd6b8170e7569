// Package report formats pipeline results as plain text.
package report

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const stageHeader = "Stage %d\n==========\n"

// Writer writes report text and keeps the first write error.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// Header writes the banner that opens a stage.
func (w *Writer) Header(stage int) {
	w.printf(stageHeader, stage)
}

// wrapped writes items space separated, perLine to a line; every line ends in
// a newline. Nothing is written for an empty sequence.
func (w *Writer) wrapped(items iter.Seq[string], perLine int) {
	var line []string
	for s := range items {
		line = append(line, s)
		if len(line) == perLine {
			w.printf("%s\n", strings.Join(line, " "))
			line = line[:0]
		}
	}
	if len(line) > 0 {
		w.printf("%s\n", strings.Join(line, " "))
	}
}

func userRefs(ids []int) string {
	refs := make([]string, len(ids))
	for i, id := range ids {
		refs[i] = fmt.Sprintf("u%d", id)
	}
	return strings.Join(refs, " ")
}
