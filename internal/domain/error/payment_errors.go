package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment does not exist for the tenant.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPaymentAmount is returned when a payment amount is zero or negative.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrInvalidPaymentStatus is returned for an unknown payment status.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidPaymentMethod is returned for an unknown payment method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPaymentAmount PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentStatus PaymentErrorCode = "PAY-010002"
	ErrCodeInvalidPaymentMethod PaymentErrorCode = "PAY-010003"

	// Lookup errors (02XXXX)
	ErrCodePaymentNotFound            PaymentErrorCode = "PAY-020001"
	ErrCodePaymentReservationNotFound PaymentErrorCode = "PAY-020002"

	// Reconciliation errors (03XXXX)
	ErrCodeReconciliationFailed PaymentErrorCode = "PAY-030001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
