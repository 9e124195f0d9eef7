package payment

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
	emails       *mocks.MockGuestEmailService
	reconciler   *reconciliation.Service

	owner       uuid.UUID
	reservation *entity.Reservation
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		reservations: mocks.NewMockReservationRepository(ctrl),
		payments:     mocks.NewMockPaymentRepository(ctrl),
		properties:   mocks.NewMockPropertyRepository(ctrl),
		emails:       mocks.NewMockGuestEmailService(ctrl),
		owner:        uuid.New(),
	}
	f.reconciler = reconciliation.NewService(f.reservations, f.payments, f.properties, f.emails, decimal.NewFromInt(21))

	f.reservation = entity.NewReservation(f.owner, uuid.New(),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC))
	f.reservation.GuestName = "Ana"
	f.reservation.ExternalSource = "Direct"
	f.reservation.BaseAmount = decimal.NewFromInt(300)
	return f
}

// expectReconcile makes the reconciler see the given payments for the reservation.
func (f *fixture) expectReconcile(ctx context.Context, payments ...*entity.Payment) {
	f.reservations.EXPECT().FindByIDWithChannel(ctx, f.owner, f.reservation.ID).
		Return(&entity.ReservationWithChannel{Reservation: f.reservation}, nil)
	f.payments.EXPECT().FindByReservation(ctx, f.reservation.ID).Return(payments, nil)
}

func (f *fixture) payment(amount int64, status valueobject.PaymentStatus) *entity.Payment {
	return entity.NewPayment(f.owner, f.reservation.ID, decimal.NewFromInt(amount), entity.PaymentMethodTransfer, status, time.Now().UTC())
}

func TestCreatePaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("partial payment", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreatePaymentUseCase(f.payments, f.reservations, f.reconciler)

		f.reservations.EXPECT().FindByID(ctx, f.owner, f.reservation.ID).Return(f.reservation, nil)
		f.payments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.expectReconcile(ctx, f.payment(100, valueobject.PaymentStatusCompleted))
		f.reservations.EXPECT().UpdatePaymentStatus(ctx, f.reservation.ID, valueobject.SettlementPartial).Return(nil)

		got, err := uc.Execute(ctx, CreatePaymentInput{
			OwnerID:       f.owner,
			ReservationID: f.reservation.ID,
			Amount:        decimal.NewFromInt(100),
			Method:        entity.PaymentMethodCash,
		})
		require.NoError(t, err)
		assert.Equal(t, valueobject.PaymentStatusCompleted, got.Payment.Status)
		assert.Equal(t, valueobject.SettlementPartial, got.Financials.Summary.Status)
		assert.Equal(t, "200.00", valueobject.FormatMoney(got.Financials.Summary.PendingAmount))
	})

	t.Run("settling payment is within a cent", func(t *testing.T) {
		f := newFixture(t)
		f.reservation.GuestEmail = "ana@example.com"
		f.reservation.PaymentStatus = valueobject.SettlementPartial
		uc := NewCreatePaymentUseCase(f.payments, f.reservations, f.reconciler)

		settling := entity.NewPayment(f.owner, f.reservation.ID, decimal.RequireFromString("199.995"),
			entity.PaymentMethodCard, valueobject.PaymentStatusCompleted, time.Now().UTC())

		f.reservations.EXPECT().FindByID(ctx, f.owner, f.reservation.ID).Return(f.reservation, nil)
		f.payments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.expectReconcile(ctx, f.payment(100, valueobject.PaymentStatusCompleted), settling)
		f.reservations.EXPECT().UpdatePaymentStatus(ctx, f.reservation.ID, valueobject.SettlementPaid).Return(nil)
		f.properties.EXPECT().FindByID(ctx, f.owner, f.reservation.PropertyID).Return(&entity.Property{Name: "Casa Mar"}, nil)
		f.emails.EXPECT().QueuePaymentReceipt(ctx, gomock.Any()).Return(nil)

		got, err := uc.Execute(ctx, CreatePaymentInput{
			OwnerID:       f.owner,
			ReservationID: f.reservation.ID,
			Amount:        decimal.RequireFromString("199.995"),
			Method:        entity.PaymentMethodCard,
		})
		require.NoError(t, err)
		assert.Equal(t, valueobject.SettlementPaid, got.Financials.Summary.Status)
		assert.True(t, got.Financials.Summary.PendingAmount.IsZero())
	})

	t.Run("reference is cut on a character boundary", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreatePaymentUseCase(f.payments, f.reservations, f.reconciler)

		var stored *entity.Payment
		f.reservations.EXPECT().FindByID(ctx, f.owner, f.reservation.ID).Return(f.reservation, nil)
		f.payments.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *entity.Payment) error {
				stored = p
				return nil
			})
		f.expectReconcile(ctx, f.payment(50, valueobject.PaymentStatusCompleted))
		f.reservations.EXPECT().UpdatePaymentStatus(ctx, f.reservation.ID, valueobject.SettlementPartial).Return(nil)

		_, err := uc.Execute(ctx, CreatePaymentInput{
			OwnerID:       f.owner,
			ReservationID: f.reservation.ID,
			Amount:        decimal.NewFromInt(50),
			Method:        entity.PaymentMethodTransfer,
			Reference:     strings.Repeat("n", MaxReferenceLength-1) + "ñ",
		})
		require.NoError(t, err)
		assert.Len(t, stored.Reference, MaxReferenceLength-1)
		assert.True(t, utf8.ValidString(stored.Reference))
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input CreatePaymentInput
			code  domainerror.PaymentErrorCode
		}{
			{"zero amount", CreatePaymentInput{Method: entity.PaymentMethodCash}, domainerror.ErrCodeInvalidPaymentAmount},
			{"unknown method", CreatePaymentInput{Amount: decimal.NewFromInt(1), Method: "crypto"}, domainerror.ErrCodeInvalidPaymentMethod},
			{"unknown status", CreatePaymentInput{Amount: decimal.NewFromInt(1), Method: entity.PaymentMethodCash, Status: "lost"}, domainerror.ErrCodeInvalidPaymentStatus},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				uc := NewCreatePaymentUseCase(f.payments, f.reservations, f.reconciler)
				f.reservations.EXPECT().FindByID(ctx, f.owner, f.reservation.ID).Return(f.reservation, nil)

				in := tt.input
				in.OwnerID = f.owner
				in.ReservationID = f.reservation.ID

				_, err := uc.Execute(ctx, in)
				var payErr *domainerror.PaymentError
				require.ErrorAs(t, err, &payErr)
				assert.Equal(t, tt.code, payErr.Code)
			})
		}
	})

	t.Run("reservation of another tenant", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreatePaymentUseCase(f.payments, f.reservations, f.reconciler)
		f.reservations.EXPECT().FindByID(ctx, f.owner, f.reservation.ID).Return(nil, domainerror.ErrReservationNotFound)

		_, err := uc.Execute(ctx, CreatePaymentInput{
			OwnerID:       f.owner,
			ReservationID: f.reservation.ID,
			Amount:        decimal.NewFromInt(1),
			Method:        entity.PaymentMethodCash,
		})
		var payErr *domainerror.PaymentError
		require.ErrorAs(t, err, &payErr)
		assert.Equal(t, domainerror.ErrCodePaymentReservationNotFound, payErr.Code)
	})
}

func TestUpdatePaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.reservation.PaymentStatus = valueobject.SettlementPaid
	uc := NewUpdatePaymentUseCase(f.payments, f.reconciler)

	p := f.payment(300, valueobject.PaymentStatusCompleted)
	refunded := valueobject.PaymentStatusRefunded

	f.payments.EXPECT().FindByID(ctx, f.owner, p.ID).Return(p, nil)
	f.payments.EXPECT().Update(ctx, p).Return(nil)
	f.expectReconcile(ctx, p)
	f.reservations.EXPECT().UpdatePaymentStatus(ctx, f.reservation.ID, valueobject.SettlementPending).Return(nil)

	got, err := uc.Execute(ctx, UpdatePaymentInput{OwnerID: f.owner, PaymentID: p.ID, Status: &refunded})
	require.NoError(t, err)
	assert.Equal(t, valueobject.PaymentStatusRefunded, got.Payment.Status)
	assert.Equal(t, valueobject.SettlementPending, got.Financials.Summary.Status)
	assert.True(t, got.Financials.Summary.TotalPaid.IsZero())
}

func TestDeletePaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes after delete", func(t *testing.T) {
		f := newFixture(t)
		f.reservation.PaymentStatus = valueobject.SettlementPartial
		uc := NewDeletePaymentUseCase(f.payments, f.reconciler)
		p := f.payment(100, valueobject.PaymentStatusCompleted)

		f.payments.EXPECT().FindByID(ctx, f.owner, p.ID).Return(p, nil)
		f.payments.EXPECT().Delete(ctx, f.owner, p.ID).Return(nil)
		f.expectReconcile(ctx)
		f.reservations.EXPECT().UpdatePaymentStatus(ctx, f.reservation.ID, valueobject.SettlementPending).Return(nil)

		got, err := uc.Execute(ctx, DeletePaymentInput{OwnerID: f.owner, PaymentID: p.ID})
		require.NoError(t, err)
		assert.Equal(t, valueobject.SettlementPending, got.Summary.Status)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		uc := NewDeletePaymentUseCase(f.payments, f.reconciler)
		id := uuid.New()

		f.payments.EXPECT().FindByID(ctx, f.owner, id).Return(nil, domainerror.ErrPaymentNotFound)

		_, err := uc.Execute(ctx, DeletePaymentInput{OwnerID: f.owner, PaymentID: id})
		var payErr *domainerror.PaymentError
		require.ErrorAs(t, err, &payErr)
		assert.Equal(t, domainerror.ErrCodePaymentNotFound, payErr.Code)
	})
}

func TestListPaymentsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewListPaymentsUseCase(f.payments)
	completed := valueobject.PaymentStatusCompleted

	f.payments.EXPECT().FindByFilter(ctx, adapter.PaymentFilter{OwnerID: f.owner, Status: &completed}).
		Return([]*entity.Payment{f.payment(10, completed)}, nil)

	got, err := uc.Execute(ctx, ListPaymentsInput{OwnerID: f.owner, Status: &completed})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
