package storage

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrNotSquare          = errors.New("friendship matrix is not square over the user count")
	ErrInvalidCell        = errors.New("friendship matrix cell must be 0 or 1")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrDuplicateUserID    = errors.New("duplicate user id")
	ErrEmptyHashtag       = errors.New("empty hashtag")
)

// StorageError provides structured error information for store operations.
type StorageError struct {
	Op          string // Operation that failed (e.g., "AddUser", "LoadFriendships")
	Entity      string // Entity type (e.g., "user", "matrix", "dataset")
	Position    int    // Positional index, if HasPosition
	HasPosition bool
	Field       string // Field name (e.g., "hashtags")
	Cause       error
	Context     string
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.HasPosition {
		if e.Field != "" {
			return fmt.Sprintf("%s %s %d (field %s): %v", e.Op, e.Entity, e.Position, e.Field, e.Cause)
		}
		if e.Context != "" {
			return fmt.Sprintf("%s %s %d (%s): %v", e.Op, e.Entity, e.Position, e.Context, e.Cause)
		}
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.Position, e.Cause)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s %s (field %s): %v", e.Op, e.Entity, e.Field, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *StorageError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building StorageErrors.
type ErrorBuilder struct {
	err StorageError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: StorageError{Op: op}}
}

// User sets the entity to "user" at the given position.
func (b *ErrorBuilder) User(pos int) *ErrorBuilder {
	b.err.Entity = "user"
	b.err.Position = pos
	b.err.HasPosition = true
	return b
}

// Row sets the entity to "row" of the friendship matrix.
func (b *ErrorBuilder) Row(pos int) *ErrorBuilder {
	b.err.Entity = "row"
	b.err.Position = pos
	b.err.HasPosition = true
	return b
}

// Matrix sets the entity to "matrix".
func (b *ErrorBuilder) Matrix() *ErrorBuilder {
	b.err.Entity = "matrix"
	return b
}

// Dataset sets the entity to "dataset".
func (b *ErrorBuilder) Dataset() *ErrorBuilder {
	b.err.Entity = "dataset"
	return b
}

// Field sets the field name.
func (b *ErrorBuilder) Field(name string) *ErrorBuilder {
	b.err.Field = name
	return b
}

// Contextf sets formatted context information.
func (b *ErrorBuilder) Contextf(format string, args ...any) *ErrorBuilder {
	b.err.Context = fmt.Sprintf(format, args...)
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// CapacityError reports that an entity grew past its configured bound.
func CapacityError(op, entity string, limit int) error {
	return &StorageError{
		Op:      op,
		Entity:  entity,
		Cause:   ErrCapacityExceeded,
		Context: fmt.Sprintf("limit %d", limit),
	}
}

// IsCapacityExceeded returns true if the error is a capacity error.
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}
