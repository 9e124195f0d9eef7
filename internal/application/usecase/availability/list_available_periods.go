package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// ListAvailablePeriodsInput represents the input for listing free periods.
// Zero MinNights and Limit use the configured defaults.
type ListAvailablePeriodsInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	Start      time.Time
	End        time.Time
	MinNights  int
	Limit      int
}

// ListAvailablePeriodsUseCase lists the bookable runs of free days.
type ListAvailablePeriodsUseCase struct {
	loader loader
}

// NewListAvailablePeriodsUseCase creates a new ListAvailablePeriodsUseCase instance.
func NewListAvailablePeriodsUseCase(
	reservationRepo adapter.ReservationRepository,
	propertyRepo adapter.PropertyRepository,
	settings Settings,
) *ListAvailablePeriodsUseCase {
	return &ListAvailablePeriodsUseCase{
		loader: loader{reservationRepo: reservationRepo, propertyRepo: propertyRepo, settings: settings},
	}
}

// Execute lists the periods, earliest first.
func (uc *ListAvailablePeriodsUseCase) Execute(ctx context.Context, input ListAvailablePeriodsInput) ([]valueobject.AvailabilityPeriod, error) {
	start, end := valueobject.Day(input.Start), valueobject.Day(input.End)
	if start.After(end) {
		return []valueobject.AvailabilityPeriod{}, nil
	}
	if err := uc.loader.checkWindow(start, end); err != nil {
		return nil, err
	}

	reservations, err := uc.loader.blocking(ctx, input.OwnerID, input.PropertyID, start, end)
	if err != nil {
		return nil, err
	}

	minNights := input.MinNights
	if minNights <= 0 {
		minNights = uc.loader.settings.MinNights
	}
	limit := input.Limit
	if limit <= 0 || (uc.loader.settings.MaxPeriods > 0 && limit > uc.loader.settings.MaxPeriods) {
		limit = uc.loader.settings.MaxPeriods
	}

	return valueobject.ListAvailablePeriods(ranges(reservations), start, end, minNights, limit), nil
}
