package reservation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// CreateReservationInput represents the input for reservation creation.
type CreateReservationInput struct {
	OwnerID        uuid.UUID
	PropertyID     uuid.UUID
	ChannelID      *uuid.UUID
	ExternalSource string
	GuestName      string
	GuestEmail     string
	Guests         int
	CheckIn        time.Time
	CheckOut       time.Time
	BaseAmount     decimal.Decimal
	CleaningFee    decimal.Decimal
	Taxes          decimal.Decimal
	Status         entity.ReservationStatus // defaults to confirmed
	Notes          string
}

// CreateReservationUseCase handles reservation creation logic.
type CreateReservationUseCase struct {
	reservationRepo adapter.ReservationRepository
	propertyRepo    adapter.PropertyRepository
	channelRepo     adapter.ChannelRepository
	reconciler      reconciliation.Reconciler
	emailService    adapter.GuestEmailService
}

// NewCreateReservationUseCase creates a new CreateReservationUseCase instance.
func NewCreateReservationUseCase(
	reservationRepo adapter.ReservationRepository,
	propertyRepo adapter.PropertyRepository,
	channelRepo adapter.ChannelRepository,
	reconciler reconciliation.Reconciler,
	emailService adapter.GuestEmailService,
) *CreateReservationUseCase {
	return &CreateReservationUseCase{
		reservationRepo: reservationRepo,
		propertyRepo:    propertyRepo,
		channelRepo:     channelRepo,
		reconciler:      reconciler,
		emailService:    emailService,
	}
}

// Execute performs the reservation creation.
func (uc *CreateReservationUseCase) Execute(ctx context.Context, input CreateReservationInput) (*reconciliation.Financials, error) {
	property, err := findProperty(ctx, uc.propertyRepo, input.OwnerID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	if input.ChannelID != nil {
		if err := ensureChannel(ctx, uc.channelRepo, input.OwnerID, *input.ChannelID); err != nil {
			return nil, err
		}
	}

	r := entity.NewReservation(input.OwnerID, input.PropertyID, input.CheckIn, input.CheckOut)
	r.ChannelID = input.ChannelID
	r.ExternalSource = input.ExternalSource
	r.GuestName = input.GuestName
	r.GuestEmail = input.GuestEmail
	r.Guests = input.Guests
	if r.Guests == 0 {
		r.Guests = 1
	}
	r.BaseAmount = input.BaseAmount
	r.CleaningFee = input.CleaningFee
	r.Taxes = input.Taxes
	if input.Status != "" {
		r.Status = input.Status
	}
	r.Notes = input.Notes

	if err := validate(r, property); err != nil {
		return nil, err
	}
	if err := ensureAvailable(ctx, uc.reservationRepo, r); err != nil {
		return nil, err
	}

	if err := uc.reservationRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	financials, err := uc.reconciler.Reconcile(ctx, r.OwnerID, r.ID)
	if err != nil {
		return nil, err
	}

	if r.Status == entity.ReservationStatusConfirmed {
		uc.queueConfirmation(ctx, financials, property)
	}
	return financials, nil
}

func (uc *CreateReservationUseCase) queueConfirmation(ctx context.Context, f *reconciliation.Financials, property *entity.Property) {
	r := f.Reservation
	if uc.emailService == nil || r.GuestEmail == "" {
		return
	}

	err := uc.emailService.QueueBookingConfirmation(ctx, adapter.BookingConfirmationInput{
		OwnerID:       r.OwnerID,
		ReservationID: r.ID,
		GuestEmail:    r.GuestEmail,
		GuestName:     r.GuestName,
		PropertyName:  property.Name,
		CheckIn:       r.CheckIn.Format(time.DateOnly),
		CheckOut:      r.CheckOut.Format(time.DateOnly),
		Nights:        r.Nights(),
		TotalAmount:   valueobject.FormatMoney(f.Breakdown.TotalAmount),
	})
	if err != nil {
		slog.Debug("Failed to queue booking confirmation", "reservation_id", r.ID, "error", err)
	}
}
