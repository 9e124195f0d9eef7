package error

import "errors"

// Reservation domain errors.
var (
	// ErrReservationNotFound is returned when a reservation does not exist for the tenant.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStayDates is returned when check-out is not after check-in.
	ErrInvalidStayDates = errors.New("check_out must be after check_in")

	// ErrDatesUnavailable is returned when the stay overlaps another reservation.
	ErrDatesUnavailable = errors.New("dates overlap an existing reservation")

	// ErrInvalidReservationStatus is returned for an unknown reservation status.
	ErrInvalidReservationStatus = errors.New("invalid reservation status")

	// ErrGuestNameRequired is returned when a reservation has no guest name.
	ErrGuestNameRequired = errors.New("guest name is required")

	// ErrGuestNameTooLong is returned when the guest name exceeds the length limit.
	ErrGuestNameTooLong = errors.New("guest name is too long")

	// ErrInvalidGuestCount is returned when the guest count is outside the property capacity.
	ErrInvalidGuestCount = errors.New("invalid guest count")

	// ErrInvalidReservationAmount is returned when an amount is negative.
	ErrInvalidReservationAmount = errors.New("amounts cannot be negative")
)

// ReservationErrorCode defines error codes for reservation errors.
// Format: RSV-XXYYYY where XX is category and YYYY is specific error.
type ReservationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidStayDates         ReservationErrorCode = "RSV-010001"
	ErrCodeInvalidReservationStatus ReservationErrorCode = "RSV-010002"
	ErrCodeGuestNameRequired        ReservationErrorCode = "RSV-010003"
	ErrCodeInvalidGuestCount        ReservationErrorCode = "RSV-010004"
	ErrCodeMissingReservationFields ReservationErrorCode = "RSV-010005"
	ErrCodeInvalidReservationAmount ReservationErrorCode = "RSV-010006"
	ErrCodeGuestNameTooLong         ReservationErrorCode = "RSV-010007"

	// Lookup errors (02XXXX)
	ErrCodeReservationNotFound         ReservationErrorCode = "RSV-020001"
	ErrCodeReservationPropertyNotFound ReservationErrorCode = "RSV-020002"
	ErrCodeReservationChannelNotFound  ReservationErrorCode = "RSV-020003"

	// Conflict errors (03XXXX)
	ErrCodeDatesUnavailable ReservationErrorCode = "RSV-030001"
)

// ReservationError represents a reservation error with code and message.
type ReservationError struct {
	Code    ReservationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReservationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReservationError) Unwrap() error {
	return e.Err
}

// NewReservationError creates a new ReservationError with the given code and message.
func NewReservationError(code ReservationErrorCode, message string, err error) *ReservationError {
	return &ReservationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
