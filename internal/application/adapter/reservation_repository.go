package adapter

//go:generate mockgen -source=reservation_repository.go -destination=mocks/mock_reservation_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// ReservationFilter defines filter options for listing reservations.
type ReservationFilter struct {
	OwnerID       uuid.UUID
	PropertyID    *uuid.UUID
	Status        *entity.ReservationStatus
	PaymentStatus *valueobject.SettlementStatus
	// From and To select stays overlapping [From, To).
	From   *time.Time
	To     *time.Time
	Search string // Case-insensitive guest name or email match
}

// ReservationPagination defines pagination options.
type ReservationPagination struct {
	Page  int
	Limit int
}

// ReservationListResult represents the result of listing reservations.
type ReservationListResult struct {
	Reservations []*entity.Reservation
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// ReservationRepository defines the interface for reservation persistence.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Reservation, error)

	// FindByIDWithChannel loads a reservation together with its channel and
	// the property-channel override, when they exist.
	FindByIDWithChannel(ctx context.Context, ownerID, id uuid.UUID) (*entity.ReservationWithChannel, error)

	FindByFilter(ctx context.Context, filter ReservationFilter, pagination ReservationPagination) (*ReservationListResult, error)

	// FindOverlapping lists the reservations of a property, in any status,
	// whose stay touches [from, to] (check-out inclusive).
	FindOverlapping(ctx context.Context, ownerID, propertyID uuid.UUID, from, to time.Time) ([]*entity.Reservation, error)

	Update(ctx context.Context, reservation *entity.Reservation) error

	// UpdatePaymentStatus writes back the derived settlement status.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status valueobject.SettlementStatus) error

	// Delete soft-deletes a reservation.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// CountActiveByProperty counts reservations that still block the calendar.
	CountActiveByProperty(ctx context.Context, ownerID, propertyID uuid.UUID) (int64, error)

	// CountByChannel counts reservations linked to a channel.
	CountByChannel(ctx context.Context, ownerID, channelID uuid.UUID) (int64, error)

	// CompletePastStays marks confirmed reservations whose check-out is on or
	// before the given day as completed, across all owners.
	CompletePastStays(ctx context.Context, before time.Time) (int64, error)
}
