package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// ListPaymentsInput represents the input for listing payments.
type ListPaymentsInput struct {
	OwnerID       uuid.UUID
	ReservationID *uuid.UUID
	Status        *valueobject.PaymentStatus
}

// ListPaymentsUseCase lists payments of one reservation or of the whole tenant.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo}
}

// Execute lists the payments, most recent first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) ([]*entity.Payment, error) {
	payments, err := uc.paymentRepo.FindByFilter(ctx, adapter.PaymentFilter{
		OwnerID:       input.OwnerID,
		ReservationID: input.ReservationID,
		Status:        input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
