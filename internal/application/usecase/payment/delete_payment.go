package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	OwnerID   uuid.UUID
	PaymentID uuid.UUID
}

// DeletePaymentUseCase soft-deletes a payment and recomputes the settlement of
// its reservation.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	reconciler  reconciliation.Reconciler
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.PaymentRepository, reconciler reconciliation.Reconciler) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
		reconciler:  reconciler,
	}
}

// Execute performs the payment deletion.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) (*reconciliation.Financials, error) {
	p, err := uc.paymentRepo.FindByID(ctx, input.OwnerID, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	if err := uc.paymentRepo.Delete(ctx, input.OwnerID, p.ID); err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to delete payment: %w", err)
	}

	return uc.reconciler.Reconcile(ctx, input.OwnerID, p.ReservationID)
}
