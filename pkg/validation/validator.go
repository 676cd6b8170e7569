package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// hashtags start with '#' and carry no whitespace or further markers
	hashtagPattern = regexp.MustCompile(`^#[^\s#]+$`)
)

func init() {
	validate = validator.New()
}

// ThresholdsRequest carries the two community detection thresholds as read
// from input or flags.
type ThresholdsRequest struct {
	Friendship float64 `yaml:"ths" validate:"gte=0,lte=1"`
	Core       int     `yaml:"thc"` // any value; negative makes every user core
}

// IndexRequest carries the learned index parameters.
type IndexRequest struct {
	TargetError int `validate:"gte=0"`
	DatasetSize int `validate:"min=1"`
	MaxKeys     int `validate:"min=1,gtefield=DatasetSize"`
}

// Struct validates any value carrying validate tags.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateThresholds validates a thresholds request
func ValidateThresholds(req *ThresholdsRequest) error {
	if req == nil {
		return errors.New("thresholds request cannot be nil")
	}
	if math.IsNaN(req.Friendship) {
		return errors.New("Friendship: must be a number")
	}
	return Struct(req)
}

// ValidateIndexRequest validates learned index parameters
func ValidateIndexRequest(req *IndexRequest) error {
	if req == nil {
		return errors.New("index request cannot be nil")
	}
	return Struct(req)
}

// ValidateHashtag checks a hashtag's shape and that its text after the
// leading '#' fits in maxLen bytes.
func ValidateHashtag(tag string, maxLen int) error {
	if !hashtagPattern.MatchString(tag) {
		return fmt.Errorf("hashtag %q is invalid (must be '#' followed by non-space characters)", tag)
	}
	if n := len(tag) - 1; n > maxLen {
		return fmt.Errorf("hashtag %q exceeds maximum length of %d characters", tag, maxLen)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gtefield":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
