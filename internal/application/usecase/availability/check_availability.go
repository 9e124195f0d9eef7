package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// CheckAvailabilityInput represents the input for a stay availability query.
type CheckAvailabilityInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

// CheckAvailabilityOutput represents the output of a stay availability query.
type CheckAvailabilityOutput struct {
	Available bool
	Nights    int
	Conflicts []*entity.Reservation
}

// CheckAvailabilityUseCase answers whether a stay can be booked.
type CheckAvailabilityUseCase struct {
	loader loader
}

// NewCheckAvailabilityUseCase creates a new CheckAvailabilityUseCase instance.
func NewCheckAvailabilityUseCase(
	reservationRepo adapter.ReservationRepository,
	propertyRepo adapter.PropertyRepository,
) *CheckAvailabilityUseCase {
	return &CheckAvailabilityUseCase{
		loader: loader{reservationRepo: reservationRepo, propertyRepo: propertyRepo},
	}
}

// Execute checks the stay. An empty or inverted stay is never available.
func (uc *CheckAvailabilityUseCase) Execute(ctx context.Context, input CheckAvailabilityInput) (*CheckAvailabilityOutput, error) {
	reservations, err := uc.loader.blocking(ctx, input.OwnerID, input.PropertyID, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	in, out := valueobject.Day(input.CheckIn), valueobject.Day(input.CheckOut)
	output := &CheckAvailabilityOutput{
		Available: valueobject.IsRangeAvailable(ranges(reservations), in, out),
		Nights:    valueobject.Nights(in, out),
		Conflicts: make([]*entity.Reservation, 0),
	}

	for _, r := range reservations {
		if r.CheckIn.Before(r.CheckOut) && in.Before(r.CheckOut) && r.CheckIn.Before(out) {
			output.Conflicts = append(output.Conflicts, r)
		}
	}
	return output, nil
}
