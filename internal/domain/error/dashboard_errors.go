package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingStartDate is returned when start is not provided.
	ErrMissingStartDate = errors.New("start is required")

	// ErrMissingEndDate is returned when end is not provided.
	ErrMissingEndDate = errors.New("end is required")

	// ErrInvalidDateRange is returned when end is before start.
	ErrInvalidDateRange = errors.New("end must not be before start")

	// ErrWindowTooLong is returned when the reporting window exceeds the allowed span.
	ErrWindowTooLong = errors.New("reporting window is too long")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate  DashboardErrorCode = "DSH-010001"
	ErrCodeMissingEndDate    DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateRange  DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010004"
	ErrCodeWindowTooLong     DashboardErrorCode = "DSH-010005"

	// Lookup errors (02XXXX)
	ErrCodeDashboardPropertyNotFound DashboardErrorCode = "DSH-020001"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
