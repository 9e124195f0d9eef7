package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// GetCalendarInput represents the input for a property calendar.
type GetCalendarInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	Start      time.Time
	End        time.Time
}

// GetCalendarUseCase builds the per-day calendar of a property.
type GetCalendarUseCase struct {
	loader loader
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(
	reservationRepo adapter.ReservationRepository,
	propertyRepo adapter.PropertyRepository,
	settings Settings,
) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		loader: loader{reservationRepo: reservationRepo, propertyRepo: propertyRepo, settings: settings},
	}
}

// Execute builds one entry per day of [Start, End].
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) ([]valueobject.CalendarDay, error) {
	start, end := valueobject.Day(input.Start), valueobject.Day(input.End)
	if start.After(end) {
		return []valueobject.CalendarDay{}, nil
	}
	if err := uc.loader.checkWindow(start, end); err != nil {
		return nil, err
	}

	reservations, err := uc.loader.blocking(ctx, input.OwnerID, input.PropertyID, start, end)
	if err != nil {
		return nil, err
	}

	return valueobject.BuildCalendar(ranges(reservations), start, end), nil
}
