package adapter

//go:generate mockgen -source=email_sender.go -destination=mocks/mock_email_sender.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider message ID.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers a rendered e-mail through the provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// GuestEmailService queues guest e-mails for asynchronous delivery.
type GuestEmailService interface {
	QueueBookingConfirmation(ctx context.Context, input BookingConfirmationInput) error
	QueuePaymentReceipt(ctx context.Context, input PaymentReceiptInput) error
}

// BookingConfirmationInput is the data of a booking confirmation e-mail.
type BookingConfirmationInput struct {
	OwnerID       uuid.UUID
	ReservationID uuid.UUID
	GuestEmail    string
	GuestName     string
	PropertyName  string
	CheckIn       string
	CheckOut      string
	Nights        int
	TotalAmount   string
}

// PaymentReceiptInput is the data of a payment receipt e-mail.
type PaymentReceiptInput struct {
	OwnerID       uuid.UUID
	ReservationID uuid.UUID
	GuestEmail    string
	GuestName     string
	PropertyName  string
	CheckIn       string
	CheckOut      string
	TotalPaid     string
	PaymentCount  int
}
