package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property does not exist for the tenant.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyNameRequired is returned when a property has an empty name.
	ErrPropertyNameRequired = errors.New("property name is required")

	// ErrInvalidMaxGuests is returned when the guest capacity is negative.
	ErrInvalidMaxGuests = errors.New("max guests cannot be negative")

	// ErrPropertyHasReservations is returned when deleting a property that still has active reservations.
	ErrPropertyHasReservations = errors.New("property has active reservations")
)

// PropertyErrorCode defines error codes for property errors.
// Format: PRP-XXYYYY where XX is category and YYYY is specific error.
type PropertyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePropertyNameRequired PropertyErrorCode = "PRP-010001"
	ErrCodeInvalidMaxGuests     PropertyErrorCode = "PRP-010002"

	// Lookup errors (02XXXX)
	ErrCodePropertyNotFound PropertyErrorCode = "PRP-020001"

	// State errors (03XXXX)
	ErrCodePropertyHasReservations PropertyErrorCode = "PRP-030001"
)

// PropertyError represents a property error with code and message.
type PropertyError struct {
	Code    PropertyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError creates a new PropertyError with the given code and message.
func NewPropertyError(code PropertyErrorCode, message string, err error) *PropertyError {
	return &PropertyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
