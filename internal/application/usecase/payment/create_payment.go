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

// CreatePaymentInput represents the input for payment creation.
type CreatePaymentInput struct {
	OwnerID       uuid.UUID
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        entity.PaymentMethod
	Status        valueobject.PaymentStatus // defaults to completed
	PaidAt        *time.Time                // defaults to now
	Reference     string
	Notes         string
}

// CreatePaymentUseCase records a payment against a reservation.
type CreatePaymentUseCase struct {
	paymentRepo     adapter.PaymentRepository
	reservationRepo adapter.ReservationRepository
	reconciler      reconciliation.Reconciler
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	reservationRepo adapter.ReservationRepository,
	reconciler reconciliation.Reconciler,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		reconciler:      reconciler,
	}
}

// Execute performs the payment creation.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*PaymentOutput, error) {
	// The reservation must belong to the tenant
	if _, err := uc.reservationRepo.FindByID(ctx, input.OwnerID, input.ReservationID); err != nil {
		if errors.Is(err, domainerror.ErrReservationNotFound) {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodePaymentReservationNotFound,
				"reservation not found",
				domainerror.ErrReservationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	paidAt := time.Now().UTC()
	if input.PaidAt != nil {
		paidAt = input.PaidAt.UTC()
	}

	p := entity.NewPayment(input.OwnerID, input.ReservationID, input.Amount, input.Method, defaultStatus(input.Status), paidAt)
	p.Reference = input.Reference
	p.Notes = input.Notes

	if err := validateFields(p); err != nil {
		return nil, err
	}

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	financials, err := uc.reconciler.Reconcile(ctx, input.OwnerID, input.ReservationID)
	if err != nil {
		return nil, err
	}

	return &PaymentOutput{Payment: p, Financials: financials}, nil
}
