package error

import "errors"

// Availability domain errors.
var (
	// ErrWindowTooLarge is returned when a calendar window spans more days than allowed.
	ErrWindowTooLarge = errors.New("window is too large")
)

// AvailabilityErrorCode defines error codes for availability errors.
// Format: AVL-XXYYYY where XX is category and YYYY is specific error.
type AvailabilityErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWindowTooLarge         AvailabilityErrorCode = "AVL-010001"
	ErrCodeAvailabilityDateFormat AvailabilityErrorCode = "AVL-010002"

	// Lookup errors (02XXXX)
	ErrCodeAvailabilityPropertyNotFound AvailabilityErrorCode = "AVL-020001"
)

// AvailabilityError represents an availability error with code and message.
type AvailabilityError struct {
	Code    AvailabilityErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AvailabilityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AvailabilityError) Unwrap() error {
	return e.Err
}

// NewAvailabilityError creates a new AvailabilityError with the given code and message.
func NewAvailabilityError(code AvailabilityErrorCode, message string, err error) *AvailabilityError {
	return &AvailabilityError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
