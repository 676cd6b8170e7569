package validation

import (
	"math"
	"strings"
	"testing"
)

func TestValidateThresholds(t *testing.T) {
	tests := []struct {
		name        string
		req         *ThresholdsRequest
		expectError bool
		errorField  string
	}{
		{"Typical thresholds", &ThresholdsRequest{Friendship: 0.3, Core: 2}, false, ""},
		{"Zero thresholds", &ThresholdsRequest{}, false, ""},
		{"Friendship at upper bound", &ThresholdsRequest{Friendship: 1}, false, ""},
		{"Negative friendship - invalid", &ThresholdsRequest{Friendship: -0.1}, true, "Friendship"},
		{"Friendship above one - invalid", &ThresholdsRequest{Friendship: 1.5}, true, "Friendship"},
		{"NaN friendship - invalid", &ThresholdsRequest{Friendship: math.NaN()}, true, "Friendship"},
		{"Negative core makes every user core", &ThresholdsRequest{Friendship: 0.5, Core: -1}, false, ""},
		{"Nil request - invalid", nil, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThresholds(tt.req)
			if tt.expectError && err == nil {
				t.Fatal("Expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if tt.errorField != "" && !strings.Contains(err.Error(), tt.errorField) {
				t.Errorf("Expected error about %s, got: %v", tt.errorField, err)
			}
		})
	}
}

func TestValidateIndexRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         *IndexRequest
		expectError bool
	}{
		{"Valid request", &IndexRequest{TargetError: 2, DatasetSize: 100, MaxKeys: 100}, false},
		{"Zero error is allowed", &IndexRequest{TargetError: 0, DatasetSize: 5, MaxKeys: 100}, false},
		{"Negative error - invalid", &IndexRequest{TargetError: -1, DatasetSize: 5, MaxKeys: 100}, true},
		{"No keys - invalid", &IndexRequest{TargetError: 1, DatasetSize: 0, MaxKeys: 100}, true},
		{"Over capacity - invalid", &IndexRequest{TargetError: 1, DatasetSize: 101, MaxKeys: 100}, true},
		{"Nil request - invalid", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndexRequest(tt.req)
			if tt.expectError && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestValidateHashtag(t *testing.T) {
	tests := []struct {
		tag         string
		maxLen      int
		expectError bool
	}{
		{"#go", 20, false},
		{"#MixedCase_42", 20, false},
		{"#" + strings.Repeat("a", 20), 20, false},
		{"#" + strings.Repeat("a", 21), 20, true},
		{"go", 20, true},
		{"#", 20, true},
		{"#two words", 20, true},
		{"#a#b", 20, true},
		{"", 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			err := ValidateHashtag(tt.tag, tt.maxLen)
			if tt.expectError && err == nil {
				t.Errorf("ValidateHashtag(%q) expected error", tt.tag)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateHashtag(%q) unexpected error: %v", tt.tag, err)
			}
		})
	}
}

func TestStruct_Nil(t *testing.T) {
	if err := Struct(nil); err == nil {
		t.Error("Struct(nil) should fail")
	}
}

func TestFormatValidationError(t *testing.T) {
	err := Struct(&IndexRequest{TargetError: 0, DatasetSize: 7, MaxKeys: 3})
	if err == nil {
		t.Fatal("Expected error for MaxKeys below Keys")
	}
	if !strings.Contains(err.Error(), "MaxKeys") {
		t.Errorf("Error should name MaxKeys, got: %v", err)
	}

	if formatValidationError(nil) != nil {
		t.Error("formatValidationError(nil) should be nil")
	}
}
