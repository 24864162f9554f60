package common

import (
	"errors"
	"fmt"

	"github.com/reviewlens/review-sentiment-api/pkg/datecodec"
)

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidation        = errors.New("validation failed")
	ErrInvalidDateFormat = datecodec.ErrInvalidDateFormat

	// Analysis errors
	ErrClassificationFailed = errors.New("sentiment classification failed")
	ErrDuplicateAnalysis    = errors.New("review already has a sentiment analysis")
)

// Validation failure reasons
const (
	ReasonRequired = "required"
	ReasonOneOf    = "oneof"
	ReasonType     = "type"
	ReasonRange    = "range"
)

// ValidationError reports the offending field of a rejected request
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) match
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
