package storage

import (
	"errors"
	"fmt"
	"testing"
)

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StorageError
		expected string
	}{
		{
			name: "with position",
			err: &StorageError{
				Op:          "AddUser",
				Entity:      "user",
				Position:    3,
				HasPosition: true,
				Cause:       fmt.Errorf("duplicate key"),
			},
			expected: "AddUser user 3: duplicate key",
		},
		{
			name: "position zero is still printed",
			err: &StorageError{
				Op:          "Row",
				Entity:      "row",
				HasPosition: true,
				Cause:       ErrPositionOutOfRange,
			},
			expected: "Row row 0: position out of range",
		},
		{
			name: "with position and field",
			err: &StorageError{
				Op:          "AddUser",
				Entity:      "user",
				Position:    4,
				HasPosition: true,
				Field:       "hashtags",
				Cause:       ErrCapacityExceeded,
			},
			expected: "AddUser user 4 (field hashtags): capacity exceeded",
		},
		{
			name: "with context",
			err: &StorageError{
				Op:      "LoadFriendships",
				Entity:  "matrix",
				Context: "2 rows for 3 users",
				Cause:   ErrNotSquare,
			},
			expected: "LoadFriendships matrix (2 rows for 3 users): friendship matrix is not square over the user count",
		},
		{
			name: "minimal",
			err: &StorageError{
				Op:     "NewSortedStore",
				Entity: "dataset",
				Cause:  fmt.Errorf("boom"),
			},
			expected: "NewSortedStore dataset: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStorageError_UnwrapAndIs(t *testing.T) {
	err := NewError("AddUser").User(1).Cause(ErrDuplicateUserID).Err()

	if !errors.Is(err, ErrDuplicateUserID) {
		t.Error("errors.Is should match the cause")
	}
	if errors.Is(err, ErrCapacityExceeded) {
		t.Error("errors.Is should not match an unrelated sentinel")
	}

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find *StorageError")
	}
	if se.Op != "AddUser" || se.Entity != "user" || se.Position != 1 {
		t.Errorf("unexpected error fields: %+v", se)
	}
	if se.Is(nil) {
		t.Error("Is(nil) should be false")
	}
}

func TestCapacityError(t *testing.T) {
	err := CapacityError("AddUser", "user", 50)
	if !IsCapacityExceeded(err) {
		t.Errorf("IsCapacityExceeded(%v) = false", err)
	}
	if got, want := err.Error(), "AddUser user (limit 50): capacity exceeded"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
