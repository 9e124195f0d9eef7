package reservation

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/adapter/mocks"
	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

type fixture struct {
	reservations *mocks.MockReservationRepository
	payments     *mocks.MockPaymentRepository
	properties   *mocks.MockPropertyRepository
	channels     *mocks.MockChannelRepository
	emails       *mocks.MockGuestEmailService
	reconciler   *reconciliation.Service

	owner    uuid.UUID
	property *entity.Property
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		reservations: mocks.NewMockReservationRepository(ctrl),
		payments:     mocks.NewMockPaymentRepository(ctrl),
		properties:   mocks.NewMockPropertyRepository(ctrl),
		channels:     mocks.NewMockChannelRepository(ctrl),
		emails:       mocks.NewMockGuestEmailService(ctrl),
		owner:        uuid.New(),
	}
	f.property = entity.NewProperty(f.owner, "Casa Mar", "Calle Mayor 1", 4)
	f.reconciler = reconciliation.NewService(f.reservations, f.payments, f.properties, f.emails, decimal.NewFromInt(21))
	return f
}

// expectReconcile serves the freshly stored reservation back to the reconciler.
func (f *fixture) expectReconcile(ctx context.Context, stored **entity.Reservation) {
	f.reservations.EXPECT().FindByIDWithChannel(ctx, f.owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*entity.ReservationWithChannel, error) {
			return &entity.ReservationWithChannel{Reservation: *stored}, nil
		})
	f.payments.EXPECT().FindByReservation(ctx, gomock.Any()).Return(nil, nil)
}

func date(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func existing(owner, property uuid.UUID, in, out string, status entity.ReservationStatus) *entity.Reservation {
	r := entity.NewReservation(owner, property, date(in), date(out))
	r.GuestName = "Existing"
	r.Guests = 2
	r.Status = status
	r.BaseAmount = decimal.NewFromInt(200)
	return r
}

func TestCreateReservationUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates, reconciles and queues a confirmation", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)

		var stored *entity.Reservation
		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().FindOverlapping(ctx, f.owner, f.property.ID, date("2024-06-01"), date("2024-06-05")).
			Return([]*entity.Reservation{
				existing(f.owner, f.property.ID, "2024-05-28", "2024-06-01", entity.ReservationStatusConfirmed),
				existing(f.owner, f.property.ID, "2024-06-05", "2024-06-08", entity.ReservationStatusConfirmed),
			}, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.Reservation) error {
				stored = r
				return nil
			})
		f.expectReconcile(ctx, &stored)
		f.emails.EXPECT().QueueBookingConfirmation(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in adapter.BookingConfirmationInput) error {
				assert.Equal(t, "Casa Mar", in.PropertyName)
				assert.Equal(t, 4, in.Nights)
				assert.Equal(t, "450.00", in.TotalAmount)
				assert.Equal(t, "2024-06-01", in.CheckIn)
				return nil
			})

		got, err := uc.Execute(ctx, CreateReservationInput{
			OwnerID:        f.owner,
			PropertyID:     f.property.ID,
			ExternalSource: "Direct",
			GuestName:      "  Ana  ",
			GuestEmail:     "ana@example.com",
			Guests:         2,
			CheckIn:        date("2024-06-01"),
			CheckOut:       date("2024-06-05"),
			BaseAmount:     decimal.NewFromInt(400),
			CleaningFee:    decimal.NewFromInt(50),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Reservation.GuestName)
		assert.Equal(t, entity.ReservationStatusConfirmed, got.Reservation.Status)
		assert.True(t, got.Breakdown.DirectChannel)
		assert.Equal(t, valueobject.SettlementPending, got.Summary.Status)
	})

	t.Run("zero amount stay gets a confirmation but no receipt", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)

		var stored *entity.Reservation
		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().FindOverlapping(ctx, f.owner, f.property.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.Reservation) error {
				stored = r
				return nil
			})
		f.expectReconcile(ctx, &stored)
		f.reservations.EXPECT().UpdatePaymentStatus(ctx, gomock.Any(), valueobject.SettlementPaid).Return(nil)
		f.emails.EXPECT().QueueBookingConfirmation(ctx, gomock.Any()).Return(nil)

		got, err := uc.Execute(ctx, CreateReservationInput{
			OwnerID:    f.owner,
			PropertyID: f.property.ID,
			GuestName:  "Luis",
			GuestEmail: "luis@example.com",
			CheckIn:    date("2024-06-01"),
			CheckOut:   date("2024-06-03"),
		})
		require.NoError(t, err)
		assert.Equal(t, valueobject.SettlementPaid, got.Summary.Status)
		assert.Zero(t, got.Summary.CompletedCount)
	})

	t.Run("notes are cut on a character boundary", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)

		var stored *entity.Reservation
		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.Reservation) error {
				stored = r
				return nil
			})
		f.expectReconcile(ctx, &stored)

		_, err := uc.Execute(ctx, CreateReservationInput{
			OwnerID:    f.owner,
			PropertyID: f.property.ID,
			GuestName:  "José",
			CheckIn:    date("2024-06-01"),
			CheckOut:   date("2024-06-03"),
			BaseAmount: decimal.NewFromInt(100),
			Notes:      strings.Repeat("a", MaxNotesLength-1) + "é",
			Status:     entity.ReservationStatusPending,
		})
		require.NoError(t, err)
		assert.Len(t, stored.Notes, MaxNotesLength-1)
		assert.True(t, utf8.ValidString(stored.Notes))
	})

	t.Run("rejects overlapping dates", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)

		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().FindOverlapping(ctx, f.owner, f.property.ID, gomock.Any(), gomock.Any()).
			Return([]*entity.Reservation{
				existing(f.owner, f.property.ID, "2024-06-04", "2024-06-07", entity.ReservationStatusConfirmed),
			}, nil)

		_, err := uc.Execute(ctx, CreateReservationInput{
			OwnerID:    f.owner,
			PropertyID: f.property.ID,
			GuestName:  "Ana",
			CheckIn:    date("2024-06-01"),
			CheckOut:   date("2024-06-05"),
		})
		var rsvErr *domainerror.ReservationError
		require.ErrorAs(t, err, &rsvErr)
		assert.Equal(t, domainerror.ErrCodeDatesUnavailable, rsvErr.Code)
	})

	t.Run("cancelled reservations do not conflict", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)

		var stored *entity.Reservation
		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().FindOverlapping(ctx, f.owner, f.property.ID, gomock.Any(), gomock.Any()).
			Return([]*entity.Reservation{
				existing(f.owner, f.property.ID, "2024-06-02", "2024-06-04", entity.ReservationStatusCancelled),
			}, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.Reservation) error {
				stored = r
				return nil
			})
		f.expectReconcile(ctx, &stored)

		_, err := uc.Execute(ctx, CreateReservationInput{
			OwnerID:    f.owner,
			PropertyID: f.property.ID,
			GuestName:  "Ana",
			CheckIn:    date("2024-06-01"),
			CheckOut:   date("2024-06-05"),
			BaseAmount: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Guests)
	})

	t.Run("pending reservations skip the availability check", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)

		var stored *entity.Reservation
		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.Reservation) error {
				stored = r
				return nil
			})
		f.expectReconcile(ctx, &stored)

		_, err := uc.Execute(ctx, CreateReservationInput{
			OwnerID:    f.owner,
			PropertyID: f.property.ID,
			GuestName:  "Ana",
			GuestEmail: "ana@example.com",
			CheckIn:    date("2024-06-01"),
			CheckOut:   date("2024-06-05"),
			BaseAmount: decimal.NewFromInt(100),
			Status:     entity.ReservationStatusPending,
		})
		require.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input func(in *CreateReservationInput)
			code  domainerror.ReservationErrorCode
		}{
			{"blank guest name", func(in *CreateReservationInput) { in.GuestName = " " }, domainerror.ErrCodeGuestNameRequired},
			{"long guest name", func(in *CreateReservationInput) { in.GuestName = strings.Repeat("ñ", MaxGuestNameLength+1) }, domainerror.ErrCodeGuestNameTooLong},
			{"same day stay", func(in *CreateReservationInput) { in.CheckOut = in.CheckIn }, domainerror.ErrCodeInvalidStayDates},
			{"inverted stay", func(in *CreateReservationInput) { in.CheckOut = in.CheckIn.AddDate(0, 0, -1) }, domainerror.ErrCodeInvalidStayDates},
			{"over capacity", func(in *CreateReservationInput) { in.Guests = 5 }, domainerror.ErrCodeInvalidGuestCount},
			{"unknown status", func(in *CreateReservationInput) { in.Status = "archived" }, domainerror.ErrCodeInvalidReservationStatus},
			{"negative amount", func(in *CreateReservationInput) { in.Taxes = decimal.NewFromInt(-1) }, domainerror.ErrCodeInvalidReservationAmount},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)
				f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)

				in := CreateReservationInput{
					OwnerID:    f.owner,
					PropertyID: f.property.ID,
					GuestName:  "Ana",
					Guests:     2,
					CheckIn:    date("2024-06-01"),
					CheckOut:   date("2024-06-05"),
				}
				tt.input(&in)

				_, err := uc.Execute(ctx, in)
				var rsvErr *domainerror.ReservationError
				require.ErrorAs(t, err, &rsvErr)
				assert.Equal(t, tt.code, rsvErr.Code)
			})
		}
	})

	t.Run("unknown property and channel", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler, f.emails)
		channelID := uuid.New()

		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(nil, domainerror.ErrPropertyNotFound)
		_, err := uc.Execute(ctx, CreateReservationInput{OwnerID: f.owner, PropertyID: f.property.ID})
		var rsvErr *domainerror.ReservationError
		require.ErrorAs(t, err, &rsvErr)
		assert.Equal(t, domainerror.ErrCodeReservationPropertyNotFound, rsvErr.Code)

		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.channels.EXPECT().FindByID(ctx, f.owner, channelID).Return(nil, domainerror.ErrChannelNotFound)
		_, err = uc.Execute(ctx, CreateReservationInput{OwnerID: f.owner, PropertyID: f.property.ID, ChannelID: &channelID})
		require.ErrorAs(t, err, &rsvErr)
		assert.Equal(t, domainerror.ErrCodeReservationChannelNotFound, rsvErr.Code)
	})
}

func TestUpdateReservationUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("moving dates excludes the reservation itself", func(t *testing.T) {
		f := newFixture(t)
		uc := NewUpdateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler)

		current := existing(f.owner, f.property.ID, "2024-06-01", "2024-06-05", entity.ReservationStatusConfirmed)
		current.BaseAmount = decimal.NewFromInt(300)
		newOut := date("2024-06-07")

		f.reservations.EXPECT().FindByID(ctx, f.owner, current.ID).Return(current, nil)
		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().FindOverlapping(ctx, f.owner, f.property.ID, date("2024-06-01"), newOut).
			Return([]*entity.Reservation{
				current,
				existing(f.owner, f.property.ID, "2024-06-07", "2024-06-09", entity.ReservationStatusConfirmed),
			}, nil)
		f.reservations.EXPECT().Update(ctx, current).Return(nil)
		f.expectReconcile(ctx, &current)

		got, err := uc.Execute(ctx, UpdateReservationInput{
			OwnerID:       f.owner,
			ReservationID: current.ID,
			CheckOut:      &newOut,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, got.Reservation.Nights())
	})

	t.Run("cancelling clears the conflict check", func(t *testing.T) {
		f := newFixture(t)
		uc := NewUpdateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler)

		current := existing(f.owner, f.property.ID, "2024-06-01", "2024-06-05", entity.ReservationStatusConfirmed)
		cancelled := entity.ReservationStatusCancelled

		f.reservations.EXPECT().FindByID(ctx, f.owner, current.ID).Return(current, nil)
		f.properties.EXPECT().FindByID(ctx, f.owner, f.property.ID).Return(f.property, nil)
		f.reservations.EXPECT().Update(ctx, current).Return(nil)
		f.expectReconcile(ctx, &current)

		got, err := uc.Execute(ctx, UpdateReservationInput{
			OwnerID:       f.owner,
			ReservationID: current.ID,
			Status:        &cancelled,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.ReservationStatusCancelled, got.Reservation.Status)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		uc := NewUpdateReservationUseCase(f.reservations, f.properties, f.channels, f.reconciler)
		id := uuid.New()

		f.reservations.EXPECT().FindByID(ctx, f.owner, id).Return(nil, domainerror.ErrReservationNotFound)

		_, err := uc.Execute(ctx, UpdateReservationInput{OwnerID: f.owner, ReservationID: id})
		var rsvErr *domainerror.ReservationError
		require.ErrorAs(t, err, &rsvErr)
		assert.Equal(t, domainerror.ErrCodeReservationNotFound, rsvErr.Code)
	})
}

func TestDeleteReservationUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewDeleteReservationUseCase(f.reservations)
	id := uuid.New()

	f.reservations.EXPECT().Delete(ctx, f.owner, id).Return(nil)
	require.NoError(t, uc.Execute(ctx, DeleteReservationInput{OwnerID: f.owner, ReservationID: id}))

	f.reservations.EXPECT().Delete(ctx, f.owner, id).Return(domainerror.ErrReservationNotFound)
	err := uc.Execute(ctx, DeleteReservationInput{OwnerID: f.owner, ReservationID: id})
	assert.ErrorIs(t, err, domainerror.ErrReservationNotFound)
}

func TestListReservationsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewListReservationsUseCase(f.reservations)
	paid := valueobject.SettlementPaid

	f.reservations.EXPECT().FindByFilter(ctx, adapter.ReservationFilter{
		OwnerID:       f.owner,
		PaymentStatus: &paid,
		Search:        "ana",
	}, adapter.ReservationPagination{Page: 1, Limit: MaxPageLimit}).
		Return(&adapter.ReservationListResult{Page: 1, Limit: MaxPageLimit, TotalPages: 1}, nil)

	got, err := uc.Execute(ctx, ListReservationsInput{
		OwnerID:       f.owner,
		PaymentStatus: &paid,
		Search:        "ana",
		Page:          0,
		Limit:         1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Pagination.TotalPages)
}
