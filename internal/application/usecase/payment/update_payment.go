package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// UpdatePaymentInput represents the input for payment update.
type UpdatePaymentInput struct {
	OwnerID   uuid.UUID
	PaymentID uuid.UUID
	Amount    *decimal.Decimal
	Method    *entity.PaymentMethod
	Status    *valueobject.PaymentStatus
	PaidAt    *time.Time
	Reference *string
	Notes     *string
}

// UpdatePaymentUseCase handles payment update logic.
type UpdatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	reconciler  reconciliation.Reconciler
}

// NewUpdatePaymentUseCase creates a new UpdatePaymentUseCase instance.
func NewUpdatePaymentUseCase(paymentRepo adapter.PaymentRepository, reconciler reconciliation.Reconciler) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		paymentRepo: paymentRepo,
		reconciler:  reconciler,
	}
}

// Execute performs the payment update.
func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, input UpdatePaymentInput) (*PaymentOutput, error) {
	p, err := uc.paymentRepo.FindByID(ctx, input.OwnerID, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	if input.Amount != nil {
		p.Amount = *input.Amount
	}
	if input.Method != nil {
		p.Method = *input.Method
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.PaidAt != nil {
		p.PaidAt = input.PaidAt.UTC()
	}
	if input.Reference != nil {
		p.Reference = *input.Reference
	}
	if input.Notes != nil {
		p.Notes = *input.Notes
	}

	if err := validateFields(p); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	financials, err := uc.reconciler.Reconcile(ctx, input.OwnerID, p.ReservationID)
	if err != nil {
		return nil, err
	}

	return &PaymentOutput{Payment: p, Financials: financials}, nil
}
