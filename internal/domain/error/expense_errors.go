package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist for the tenant.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when an expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrExpenseDescriptionRequired is returned when an expense has no description.
	ErrExpenseDescriptionRequired = errors.New("expense description is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount       ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-010002"
	ErrCodeExpensePropertyNotFound    ExpenseErrorCode = "EXP-010003"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
