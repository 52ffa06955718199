// Package error defines domain-specific errors for the Cash Coach application.
package error

import "errors"

// Coaching domain errors. The analysis engine itself never fails; these cover
// the surrounding report retrieval and narrative generation.
var (
	// ErrNarrativeUnavailable is returned when the narrative service is not configured.
	ErrNarrativeUnavailable = errors.New("coach narrative service is not available")

	// ErrNarrativeGenerationFailed is returned when narrative generation fails.
	ErrNarrativeGenerationFailed = errors.New("failed to generate coach narrative")

	// ErrReportUnavailable is returned when a coaching report cannot be produced.
	ErrReportUnavailable = errors.New("coaching report unavailable")
)

// CoachingErrorCode defines error codes for coaching errors.
// Format: CCH-XXYYYY where XX is category and YYYY is specific error.
type CoachingErrorCode string

const (
	// Narrative errors (01XXXX)
	ErrCodeNarrativeUnavailable      CoachingErrorCode = "CCH-010001"
	ErrCodeNarrativeGenerationFailed CoachingErrorCode = "CCH-010002"

	// Internal errors (99XXXX)
	ErrCodeCoachingInternalError CoachingErrorCode = "CCH-990001"
)

// CoachingError represents a coaching error with code and message.
type CoachingError struct {
	Code    CoachingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CoachingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CoachingError) Unwrap() error {
	return e.Err
}

// NewCoachingError creates a new CoachingError with the given code and message.
func NewCoachingError(code CoachingErrorCode, message string, err error) *CoachingError {
	return &CoachingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
