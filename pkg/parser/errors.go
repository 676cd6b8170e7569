package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedUser is returned for a user line whose hashtags are unusable.
	ErrMalformedUser = errors.New("malformed user line")

	// ErrMissingThresholds is returned when neither the input nor the
	// caller supplies ths and thc.
	ErrMissingThresholds = errors.New("missing community thresholds")
)

// LineError locates a parse failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
