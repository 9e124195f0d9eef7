package adapter

//go:generate mockgen -source=payment_repository.go -destination=mocks/mock_payment_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// PaymentFilter defines filter options for listing payments.
type PaymentFilter struct {
	OwnerID       uuid.UUID
	ReservationID *uuid.UUID
	Status        *valueobject.PaymentStatus
}

// PaymentRepository defines the interface for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Payment, error)
	FindByFilter(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)

	// FindByReservation lists every payment of a reservation, in any status.
	FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error)

	// FindByReservations groups the payments of several reservations by reservation ID.
	FindByReservations(ctx context.Context, reservationIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error)

	Update(ctx context.Context, payment *entity.Payment) error

	// Delete soft-deletes a payment.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
