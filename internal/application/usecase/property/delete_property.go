package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// DeletePropertyInput represents the input for property deletion.
type DeletePropertyInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
}

// DeletePropertyUseCase soft-deletes a property that has no reservation
// still pending or confirmed.
type DeletePropertyUseCase struct {
	propertyRepo    adapter.PropertyRepository
	reservationRepo adapter.ReservationRepository
}

// NewDeletePropertyUseCase creates a new DeletePropertyUseCase instance.
func NewDeletePropertyUseCase(
	propertyRepo adapter.PropertyRepository,
	reservationRepo adapter.ReservationRepository,
) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
	}
}

// Execute performs the property deletion.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, input DeletePropertyInput) error {
	active, err := uc.reservationRepo.CountActiveByProperty(ctx, input.OwnerID, input.PropertyID)
	if err != nil {
		return fmt.Errorf("failed to count reservations: %w", err)
	}
	if active > 0 {
		return domainerror.NewPropertyError(
			domainerror.ErrCodePropertyHasReservations,
			fmt.Sprintf("property has %d active reservations", active),
			domainerror.ErrPropertyHasReservations,
		)
	}

	if err := uc.propertyRepo.Delete(ctx, input.OwnerID, input.PropertyID); err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}
