package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// UpdateReservationInput represents the input for reservation update.
// Nil fields are left unchanged.
type UpdateReservationInput struct {
	OwnerID        uuid.UUID
	ReservationID  uuid.UUID
	ChannelID      *uuid.UUID
	ClearChannel   bool
	ExternalSource *string
	GuestName      *string
	GuestEmail     *string
	Guests         *int
	CheckIn        *time.Time
	CheckOut       *time.Time
	BaseAmount     *decimal.Decimal
	CleaningFee    *decimal.Decimal
	Taxes          *decimal.Decimal
	Status         *entity.ReservationStatus
	Notes          *string
}

// UpdateReservationUseCase handles reservation update logic.
type UpdateReservationUseCase struct {
	reservationRepo adapter.ReservationRepository
	propertyRepo    adapter.PropertyRepository
	channelRepo     adapter.ChannelRepository
	reconciler      reconciliation.Reconciler
}

// NewUpdateReservationUseCase creates a new UpdateReservationUseCase instance.
func NewUpdateReservationUseCase(
	reservationRepo adapter.ReservationRepository,
	propertyRepo adapter.PropertyRepository,
	channelRepo adapter.ChannelRepository,
	reconciler reconciliation.Reconciler,
) *UpdateReservationUseCase {
	return &UpdateReservationUseCase{
		reservationRepo: reservationRepo,
		propertyRepo:    propertyRepo,
		channelRepo:     channelRepo,
		reconciler:      reconciler,
	}
}

// Execute performs the reservation update.
func (uc *UpdateReservationUseCase) Execute(ctx context.Context, input UpdateReservationInput) (*reconciliation.Financials, error) {
	r, err := uc.reservationRepo.FindByID(ctx, input.OwnerID, input.ReservationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReservationNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	property, err := findProperty(ctx, uc.propertyRepo, r.OwnerID, r.PropertyID)
	if err != nil {
		return nil, err
	}

	// Apply changes
	if input.ClearChannel {
		r.ChannelID = nil
	} else if input.ChannelID != nil {
		if err := ensureChannel(ctx, uc.channelRepo, r.OwnerID, *input.ChannelID); err != nil {
			return nil, err
		}
		r.ChannelID = input.ChannelID
	}
	if input.ExternalSource != nil {
		r.ExternalSource = *input.ExternalSource
	}
	if input.GuestName != nil {
		r.GuestName = *input.GuestName
	}
	if input.GuestEmail != nil {
		r.GuestEmail = *input.GuestEmail
	}
	if input.Guests != nil {
		r.Guests = *input.Guests
	}
	if input.CheckIn != nil {
		r.CheckIn = valueobject.Day(*input.CheckIn)
	}
	if input.CheckOut != nil {
		r.CheckOut = valueobject.Day(*input.CheckOut)
	}
	if input.BaseAmount != nil {
		r.BaseAmount = *input.BaseAmount
	}
	if input.CleaningFee != nil {
		r.CleaningFee = *input.CleaningFee
	}
	if input.Taxes != nil {
		r.Taxes = *input.Taxes
	}
	if input.Status != nil {
		r.Status = *input.Status
	}
	if input.Notes != nil {
		r.Notes = *input.Notes
	}

	if err := validate(r, property); err != nil {
		return nil, err
	}
	if err := ensureAvailable(ctx, uc.reservationRepo, r); err != nil {
		return nil, err
	}

	r.UpdatedAt = time.Now().UTC()
	if err := uc.reservationRepo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	return uc.reconciler.Reconcile(ctx, r.OwnerID, r.ID)
}
