// Package reservation contains reservation-related use cases.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// Validation constants.
const (
	MaxGuestNameLength = 200
	MaxNotesLength     = 2000
	DefaultPageLimit   = 20
	MaxPageLimit       = 100
)

// validate checks the fields of a reservation against its property.
func validate(r *entity.Reservation, property *entity.Property) error {
	r.GuestName = strings.TrimSpace(r.GuestName)
	if r.GuestName == "" {
		return domainerror.NewReservationError(
			domainerror.ErrCodeGuestNameRequired,
			"guest name is required",
			domainerror.ErrGuestNameRequired,
		)
	}
	if utf8.RuneCountInString(r.GuestName) > MaxGuestNameLength {
		return domainerror.NewReservationError(
			domainerror.ErrCodeGuestNameTooLong,
			fmt.Sprintf("guest name must be at most %d characters", MaxGuestNameLength),
			domainerror.ErrGuestNameTooLong,
		)
	}

	if !r.CheckIn.Before(r.CheckOut) {
		return domainerror.NewReservationError(
			domainerror.ErrCodeInvalidStayDates,
			"check_out must be after check_in",
			domainerror.ErrInvalidStayDates,
		)
	}

	if r.Guests < 1 || (property.MaxGuests > 0 && r.Guests > property.MaxGuests) {
		return domainerror.NewReservationError(
			domainerror.ErrCodeInvalidGuestCount,
			fmt.Sprintf("guests must be between 1 and the property capacity (%d)", property.MaxGuests),
			domainerror.ErrInvalidGuestCount,
		)
	}

	if !r.Status.IsValid() {
		return domainerror.NewReservationError(
			domainerror.ErrCodeInvalidReservationStatus,
			"status must be one of pending, confirmed, cancelled, completed",
			domainerror.ErrInvalidReservationStatus,
		)
	}

	if r.BaseAmount.IsNegative() || r.CleaningFee.IsNegative() || r.Taxes.IsNegative() {
		return domainerror.NewReservationError(
			domainerror.ErrCodeInvalidReservationAmount,
			"amounts cannot be negative",
			domainerror.ErrInvalidReservationAmount,
		)
	}

	r.Notes = valueobject.TruncateText(r.Notes, MaxNotesLength)
	return nil
}

// ensureAvailable rejects a stay that overlaps another reservation occupying
// the property. The reservation itself is excluded from the conflict set, and
// statuses that do not block the calendar are never rejected.
func ensureAvailable(ctx context.Context, repo adapter.ReservationRepository, r *entity.Reservation) error {
	if !r.Status.BlocksCalendar() {
		return nil
	}

	existing, err := repo.FindOverlapping(ctx, r.OwnerID, r.PropertyID, r.CheckIn, r.CheckOut)
	if err != nil {
		return fmt.Errorf("failed to load overlapping reservations: %w", err)
	}

	self := r.ID
	if !valueobject.IsRangeAvailable(entity.BlockingRanges(existing, &self), r.CheckIn, r.CheckOut) {
		return domainerror.NewReservationError(
			domainerror.ErrCodeDatesUnavailable,
			"the property is already booked for some of these dates",
			domainerror.ErrDatesUnavailable,
		)
	}
	return nil
}

func findProperty(ctx context.Context, repo adapter.PropertyRepository, ownerID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := repo.FindByID(ctx, ownerID, propertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, domainerror.NewReservationError(
				domainerror.ErrCodeReservationPropertyNotFound,
				"property not found",
				domainerror.ErrPropertyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return property, nil
}

func ensureChannel(ctx context.Context, repo adapter.ChannelRepository, ownerID, channelID uuid.UUID) error {
	if _, err := repo.FindByID(ctx, ownerID, channelID); err != nil {
		if errors.Is(err, domainerror.ErrChannelNotFound) {
			return domainerror.NewReservationError(
				domainerror.ErrCodeReservationChannelNotFound,
				"channel not found",
				domainerror.ErrChannelNotFound,
			)
		}
		return fmt.Errorf("failed to find channel: %w", err)
	}
	return nil
}

func notFound() error {
	return domainerror.NewReservationError(
		domainerror.ErrCodeReservationNotFound,
		"reservation not found",
		domainerror.ErrReservationNotFound,
	)
}
