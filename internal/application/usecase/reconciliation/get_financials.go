package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// GetFinancialsInput represents the input for reading reservation financials.
type GetFinancialsInput struct {
	OwnerID       uuid.UUID
	ReservationID uuid.UUID
}

// GetFinancialsUseCase exposes the breakdown and settlement of a reservation.
type GetFinancialsUseCase struct {
	reconciler Reconciler
}

// NewGetFinancialsUseCase creates a new GetFinancialsUseCase instance.
func NewGetFinancialsUseCase(reconciler Reconciler) *GetFinancialsUseCase {
	return &GetFinancialsUseCase{reconciler: reconciler}
}

// Execute computes the financials of the reservation.
func (uc *GetFinancialsUseCase) Execute(ctx context.Context, input GetFinancialsInput) (*Financials, error) {
	financials, err := uc.reconciler.Financials(ctx, input.OwnerID, input.ReservationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReservationNotFound) {
			return nil, domainerror.NewReservationError(
				domainerror.ErrCodeReservationNotFound,
				"reservation not found",
				domainerror.ErrReservationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to compute financials: %w", err)
	}
	return financials, nil
}
