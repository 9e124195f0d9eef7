// Package availability contains the calendar and availability use cases of a
// property.
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// Settings are the tunables of the availability queries.
type Settings struct {
	MinNights     int
	MaxPeriods    int
	MaxWindowDays int
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		MinNights:     valueobject.DefaultMinNights,
		MaxPeriods:    valueobject.DefaultMaxPeriods,
		MaxWindowDays: 366,
	}
}

// loader fetches the reservations that occupy a property within a window.
type loader struct {
	reservationRepo adapter.ReservationRepository
	propertyRepo    adapter.PropertyRepository
	settings        Settings
}

func (l loader) blocking(ctx context.Context, ownerID, propertyID uuid.UUID, from, to time.Time) ([]*entity.Reservation, error) {
	if _, err := l.propertyRepo.FindByID(ctx, ownerID, propertyID); err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, domainerror.NewAvailabilityError(
				domainerror.ErrCodeAvailabilityPropertyNotFound,
				"property not found",
				domainerror.ErrPropertyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	reservations, err := l.reservationRepo.FindOverlapping(ctx, ownerID, propertyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	out := make([]*entity.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Status.BlocksCalendar() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l loader) checkWindow(start, end time.Time) error {
	if l.settings.MaxWindowDays > 0 && valueobject.Nights(start, end) > l.settings.MaxWindowDays {
		return domainerror.NewAvailabilityError(
			domainerror.ErrCodeWindowTooLarge,
			fmt.Sprintf("window cannot span more than %d days", l.settings.MaxWindowDays),
			domainerror.ErrWindowTooLarge,
		)
	}
	return nil
}

func ranges(reservations []*entity.Reservation) []valueobject.ReservationRange {
	return entity.BlockingRanges(reservations, nil)
}
