// Package error defines domain-specific errors for the Cash Coach application.
package error

import "errors"

// Scheduled purchase domain errors.
var (
	// ErrScheduledPurchaseNotFound is returned when a scheduled purchase is not found.
	ErrScheduledPurchaseNotFound = errors.New("scheduled purchase not found")

	// ErrInvalidPurchaseAmount is returned when the purchase amount is zero or negative.
	ErrInvalidPurchaseAmount = errors.New("invalid purchase amount")

	// ErrInvalidPurchaseFrequency is returned when the frequency is invalid.
	ErrInvalidPurchaseFrequency = errors.New("frequency must be: daily, weekly, monthly, or yearly")

	// ErrInvalidNextDueDate is returned when the next due date is invalid.
	ErrInvalidNextDueDate = errors.New("invalid next due date")

	// ErrNotAuthorizedToModifyPurchase is returned when user is not authorized to modify a scheduled purchase.
	ErrNotAuthorizedToModifyPurchase = errors.New("not authorized to modify scheduled purchase")
)

// ScheduledPurchaseErrorCode defines error codes for scheduled purchase errors.
// Format: SCH-XXYYYY where XX is category and YYYY is specific error.
type ScheduledPurchaseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeScheduledPurchaseNotFound ScheduledPurchaseErrorCode = "SCH-010001"
	ErrCodeInvalidPurchaseAmount     ScheduledPurchaseErrorCode = "SCH-010002"
	ErrCodeInvalidPurchaseFrequency  ScheduledPurchaseErrorCode = "SCH-010003"
	ErrCodeInvalidNextDueDate        ScheduledPurchaseErrorCode = "SCH-010004"
	ErrCodeNotAuthorizedPurchase     ScheduledPurchaseErrorCode = "SCH-010005"
	ErrCodeMissingPurchaseFields     ScheduledPurchaseErrorCode = "SCH-010006"
)

// ScheduledPurchaseError represents a scheduled purchase error with code and message.
type ScheduledPurchaseError struct {
	Code    ScheduledPurchaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScheduledPurchaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScheduledPurchaseError) Unwrap() error {
	return e.Err
}

// NewScheduledPurchaseError creates a new ScheduledPurchaseError with the given code and message.
func NewScheduledPurchaseError(code ScheduledPurchaseErrorCode, message string, err error) *ScheduledPurchaseError {
	return &ScheduledPurchaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
