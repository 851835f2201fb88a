package estimator

import (
	"errors"
	"fmt"
)

// InputValidationError is returned when a job request fails the required
// field checks. It is never recovered internally; callers surface it next
// to the offending field.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid job request: %s %s", e.Field, e.Reason)
}

// IsInputValidation reports whether err is an input validation failure
func IsInputValidation(err error) bool {
	var ive *InputValidationError
	return errors.As(err, &ive)
}

// ResponseParseError is returned by the parser when the model's text cannot
// be turned into a well-formed estimate. The engine recovers from it by
// switching to the fallback calculation; it never reaches callers.
type ResponseParseError struct {
	Reason string
	Err    error
}

func (e *ResponseParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse AI response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse AI response: %s", e.Reason)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

// ValidationKind classifies estimate validation failures
type ValidationKind int

const (
	ValidationMissingField ValidationKind = iota
	ValidationInvalidValue
	ValidationInvalidRange
)

// String returns the string representation of the validation kind
func (k ValidationKind) String() string {
	switch k {
	case ValidationMissingField:
		return "missing_field"
	case ValidationInvalidValue:
		return "invalid_value"
	case ValidationInvalidRange:
		return "invalid_range"
	default:
		return "unknown"
	}
}

// EstimateValidationError is returned by ValidateEstimate when an estimate
// fails its post-condition checks
type EstimateValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (e *EstimateValidationError) Error() string {
	return fmt.Sprintf("invalid estimate: %s", e.Detail)
}

// ValidationKindOf extracts the validation kind from an error, if it is an
// estimate validation failure.
func ValidationKindOf(err error) (ValidationKind, bool) {
	var eve *EstimateValidationError
	if errors.As(err, &eve) {
		return eve.Kind, true
	}
	return 0, false
}
