package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// DeleteReservationInput represents the input for reservation deletion.
type DeleteReservationInput struct {
	OwnerID       uuid.UUID
	ReservationID uuid.UUID
}

// DeleteReservationUseCase soft-deletes a reservation. Its payments stay in
// place and stop counting towards any total.
type DeleteReservationUseCase struct {
	reservationRepo adapter.ReservationRepository
}

// NewDeleteReservationUseCase creates a new DeleteReservationUseCase instance.
func NewDeleteReservationUseCase(reservationRepo adapter.ReservationRepository) *DeleteReservationUseCase {
	return &DeleteReservationUseCase{reservationRepo: reservationRepo}
}

// Execute performs the reservation deletion.
func (uc *DeleteReservationUseCase) Execute(ctx context.Context, input DeleteReservationInput) error {
	if err := uc.reservationRepo.Delete(ctx, input.OwnerID, input.ReservationID); err != nil {
		if errors.Is(err, domainerror.ErrReservationNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}
