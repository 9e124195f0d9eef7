package error

import "errors"

var (
	// ErrInvalidTemplate is returned when a queued job names a template the
	// outbox does not know.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrTemplateRenderFailed is returned when a guest e-mail cannot be rendered.
	ErrTemplateRenderFailed = errors.New("failed to render email template")
)

// EmailErrorCode identifies a failure of the guest e-mail outbox.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Outbox (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-010001"

	// Provider delivery (02XXXX). Permanent failures are never retried.
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020002"

	// Rendering (03XXXX)
	ErrCodeInvalidTemplate      EmailErrorCode = "EML-030001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EML-030002"
)

// EmailError carries an outbox failure code.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Err: err}
}
