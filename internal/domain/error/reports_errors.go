// Package error defines domain-specific errors for the Cash Coach application.
package error

import "errors"

// Reports domain errors.
var (
	// ErrInvalidReportRange is returned when the months parameter is not supported.
	ErrInvalidReportRange = errors.New("months must be one of: 1, 3, 6, 12")
)

// ReportsErrorCode defines error codes for reports errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportRange ReportsErrorCode = "RPT-010001"

	// Internal errors (99XXXX)
	ErrCodeReportsInternalError ReportsErrorCode = "RPT-990001"
)

// ReportsError represents a reports error with code and message.
type ReportsError struct {
	Code    ReportsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportsError) Unwrap() error {
	return e.Err
}

// NewReportsError creates a new ReportsError with the given code and message.
func NewReportsError(code ReportsErrorCode, message string, err error) *ReportsError {
	return &ReportsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
