package learnedindex

import "errors"

var (
	ErrEmptyDataset  = errors.New("learned index needs at least one key")
	ErrUnsorted      = errors.New("keys must be sorted ascending")
	ErrNegativeError = errors.New("target error must be non-negative")
)
