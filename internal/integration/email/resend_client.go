// Package email delivers queued guest e-mails.
package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/rentaldesk/backend/internal/application/adapter"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// ResendClient sends e-mails through the Resend API.
type ResendClient struct {
	client  *resend.Client
	from    string
	replyTo string
}

// NewResendClient creates a new Resend client. An empty baseURL keeps the
// SDK's public endpoint.
func NewResendClient(apiKey, fromName, fromEmail, replyTo, baseURL string) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = u
	}
	return &ResendClient{
		client:  client,
		from:    fmt.Sprintf("%s <%s>", fromName, fromEmail),
		replyTo: replyTo,
	}, nil
}

func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}
	if c.replyTo != "" {
		params.ReplyTo = c.replyTo
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", err)
		}
		return nil, domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", err)
	}

	return &adapter.SendEmailResult{ProviderID: resp.Id}, nil
}

var permanentPatterns = []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "invalid"}

// isPermanentError reports whether Resend rejected the request itself, as
// opposed to rate limiting or a server-side failure worth retrying.
func isPermanentError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// LogSender records e-mails instead of sending them. It is used when no
// Resend API key is configured and in tests.
type LogSender struct {
	mu   sync.Mutex
	sent []adapter.SendEmailInput
	fail error
}

// NewLogSender creates a sender that keeps everything in memory.
func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return nil, s.fail
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("local-%d", len(s.sent))}, nil
}

// FailWith makes every following Send return err. Pass nil to recover.
func (s *LogSender) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// Sent returns a copy of the delivered e-mails.
func (s *LogSender) Sent() []adapter.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), s.sent...)
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*LogSender)(nil)
)
