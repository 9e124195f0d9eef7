// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the delivery state of a queued guest e-mail.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType selects the template rendered for a job.
type EmailTemplateType string

const (
	TemplateBookingConfirmation EmailTemplateType = "booking_confirmation"
	TemplatePaymentReceipt      EmailTemplateType = "payment_receipt"
)

// DefaultEmailMaxAttempts is how many times a job is tried before it is failed.
const DefaultEmailMaxAttempts = 3

var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is a guest e-mail waiting in the outbound queue.
type EmailJob struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	ReservationID  uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending job for a reservation guest.
func NewEmailJob(
	ownerID uuid.UUID,
	reservationID uuid.UUID,
	templateType EmailTemplateType,
	recipientEmail, recipientName, subject string,
	data map[string]interface{},
) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		ReservationID:  reservationID,
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    DefaultEmailMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing claims the job for a worker.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery.
func (e *EmailJob) MarkSent(providerID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ProviderID = providerID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt. The job is rescheduled with backoff
// unless the failure is permanent or the attempts are exhausted.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	now := time.Now().UTC()
	if permanent || !e.CanRetry() {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if e.Attempts < len(emailRetryDelays) {
		delay = emailRetryDelays[e.Attempts]
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(delay)
}

// CanRetry reports whether attempts remain.
func (e *EmailJob) CanRetry() bool {
	return e.Attempts < e.MaxAttempts
}
