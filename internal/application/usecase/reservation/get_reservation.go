package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// GetReservationInput represents the input for reading one reservation.
type GetReservationInput struct {
	OwnerID       uuid.UUID
	ReservationID uuid.UUID
}

// GetReservationUseCase loads a reservation with its charge breakdown and
// payment summary.
type GetReservationUseCase struct {
	reconciler reconciliation.Reconciler
}

// NewGetReservationUseCase creates a new GetReservationUseCase instance.
func NewGetReservationUseCase(reconciler reconciliation.Reconciler) *GetReservationUseCase {
	return &GetReservationUseCase{reconciler: reconciler}
}

// Execute loads the reservation.
func (uc *GetReservationUseCase) Execute(ctx context.Context, input GetReservationInput) (*reconciliation.Financials, error) {
	financials, err := uc.reconciler.Financials(ctx, input.OwnerID, input.ReservationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReservationNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	return financials, nil
}
