package email

import (
	"context"
	"fmt"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// Service queues guest e-mails in the outbox.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{queue: queue}
}

func (s *Service) QueueBookingConfirmation(ctx context.Context, input adapter.BookingConfirmationInput) error {
	job := entity.NewEmailJob(
		input.OwnerID,
		input.ReservationID,
		entity.TemplateBookingConfirmation,
		input.GuestEmail,
		input.GuestName,
		fmt.Sprintf("Your stay at %s is confirmed", input.PropertyName),
		map[string]interface{}{
			"guest_name":    input.GuestName,
			"property_name": input.PropertyName,
			"check_in":      input.CheckIn,
			"check_out":     input.CheckOut,
			"nights":        input.Nights,
			"total_amount":  input.TotalAmount,
		},
	)
	return s.enqueue(ctx, job)
}

func (s *Service) QueuePaymentReceipt(ctx context.Context, input adapter.PaymentReceiptInput) error {
	job := entity.NewEmailJob(
		input.OwnerID,
		input.ReservationID,
		entity.TemplatePaymentReceipt,
		input.GuestEmail,
		input.GuestName,
		fmt.Sprintf("Payment received for %s", input.PropertyName),
		map[string]interface{}{
			"guest_name":    input.GuestName,
			"property_name": input.PropertyName,
			"check_in":      input.CheckIn,
			"check_out":     input.CheckOut,
			"total_paid":    input.TotalPaid,
			"payment_count": input.PaymentCount,
		},
	)
	return s.enqueue(ctx, job)
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", job.TemplateType),
			err,
		)
	}
	return nil
}

var _ adapter.GuestEmailService = (*Service)(nil)
