package error

import "errors"

// Channel domain errors.
var (
	// ErrChannelNotFound is returned when a channel does not exist for the tenant.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrChannelNameRequired is returned when a channel has an empty name.
	ErrChannelNameRequired = errors.New("channel name is required")

	// ErrChannelAlreadyExists is returned when the tenant already has a channel with that name.
	ErrChannelAlreadyExists = errors.New("channel already exists")

	// ErrInvalidCommissionPercent is returned when a percentage is negative.
	ErrInvalidCommissionPercent = errors.New("commission percentages cannot be negative")

	// ErrChannelInUse is returned when deleting a channel referenced by reservations.
	ErrChannelInUse = errors.New("channel is referenced by reservations")
)

// ChannelErrorCode defines error codes for channel errors.
// Format: CHN-XXYYYY where XX is category and YYYY is specific error.
type ChannelErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeChannelNameRequired      ChannelErrorCode = "CHN-010001"
	ErrCodeChannelAlreadyExists     ChannelErrorCode = "CHN-010002"
	ErrCodeInvalidCommissionPercent ChannelErrorCode = "CHN-010003"

	// Lookup errors (02XXXX)
	ErrCodeChannelNotFound ChannelErrorCode = "CHN-020001"

	// State errors (03XXXX)
	ErrCodeChannelInUse ChannelErrorCode = "CHN-030001"
)

// ChannelError represents a channel error with code and message.
type ChannelError struct {
	Code    ChannelErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChannelError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChannelError) Unwrap() error {
	return e.Err
}

// NewChannelError creates a new ChannelError with the given code and message.
func NewChannelError(code ChannelErrorCode, message string, err error) *ChannelError {
	return &ChannelError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
