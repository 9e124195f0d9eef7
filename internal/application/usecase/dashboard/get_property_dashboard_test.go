package dashboard

import (
	"context"
	"testing"
	"time"

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

func date(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	properties   *mocks.MockPropertyRepository
	reservations *mocks.MockReservationRepository
	channels     *mocks.MockChannelRepository
	payments     *mocks.MockPaymentRepository
	expenses     *mocks.MockExpenseRepository
	uc           *GetPropertyDashboardUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		properties:   mocks.NewMockPropertyRepository(ctrl),
		reservations: mocks.NewMockReservationRepository(ctrl),
		channels:     mocks.NewMockChannelRepository(ctrl),
		payments:     mocks.NewMockPaymentRepository(ctrl),
		expenses:     mocks.NewMockExpenseRepository(ctrl),
	}
	charges := reconciliation.NewService(f.reservations, f.payments, f.properties, nil, decimal.NewFromInt(21))
	f.uc = NewGetPropertyDashboardUseCase(f.properties, f.reservations, f.channels, f.payments, f.expenses, charges)
	return f
}

func TestGetPropertyDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := uuid.New()
	property := entity.NewProperty(owner, "Casa Mar", "", 4)
	booking := entity.NewChannel(owner, "Booking", decimal.NewFromInt(21))

	// 4 nights inside June via Booking with a 15% commission
	viaBooking := entity.NewReservation(owner, property.ID, date("2024-06-01"), date("2024-06-05"))
	viaBooking.ChannelID = &booking.ID
	viaBooking.BaseAmount = money("400")
	viaBooking.CleaningFee = money("50")

	// Direct stay straddling the end of the window: 2 of its nights fall in June
	direct := entity.NewReservation(owner, property.ID, date("2024-06-29"), date("2024-07-03"))
	direct.ExternalSource = "Propio"
	direct.BaseAmount = money("300")

	cancelled := entity.NewReservation(owner, property.ID, date("2024-06-10"), date("2024-06-12"))
	cancelled.Status = entity.ReservationStatusCancelled
	cancelled.BaseAmount = money("999")

	// Checked out on the first day of the window: no night inside it
	departed := entity.NewReservation(owner, property.ID, date("2024-05-28"), date("2024-06-01"))
	departed.BaseAmount = money("100")

	f.properties.EXPECT().FindByOwner(ctx, owner).Return([]*entity.Property{property}, nil)
	f.channels.EXPECT().FindByOwner(ctx, owner).Return([]*entity.Channel{booking}, nil)
	f.reservations.EXPECT().FindOverlapping(ctx, owner, property.ID, date("2024-06-01"), date("2024-07-01")).
		Return([]*entity.Reservation{departed, viaBooking, cancelled, direct}, nil)
	f.channels.EXPECT().FindOverridesByProperty(ctx, property.ID).Return([]*entity.PropertyChannel{{
		PropertyID:               property.ID,
		ChannelID:                booking.ID,
		ChannelCommissionPercent: func() *decimal.Decimal { d := money("15"); return &d }(),
	}}, nil)
	f.payments.EXPECT().FindByReservations(ctx, []uuid.UUID{viaBooking.ID, direct.ID}).
		Return(map[uuid.UUID][]*entity.Payment{
			viaBooking.ID: {
				entity.NewPayment(owner, viaBooking.ID, money("377.40"), entity.PaymentMethodChannel, valueobject.PaymentStatusCompleted, date("2024-06-05")),
			},
			direct.ID: {
				entity.NewPayment(owner, direct.ID, money("100"), entity.PaymentMethodCash, valueobject.PaymentStatusCompleted, date("2024-06-29")),
				entity.NewPayment(owner, direct.ID, money("50"), entity.PaymentMethodCash, valueobject.PaymentStatusRefunded, date("2024-06-29")),
			},
		}, nil)
	f.expenses.EXPECT().SumByFilter(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter adapter.ExpenseFilter) (decimal.Decimal, error) {
			assert.Equal(t, date("2024-06-30"), *filter.EndDate)
			return money("80"), nil
		})

	got, err := f.uc.Execute(ctx, GetPropertyDashboardInput{
		OwnerID: owner,
		Start:   date("2024-06-01"),
		End:     date("2024-06-30"),
	})
	require.NoError(t, err)
	require.Len(t, got.Properties, 1)

	p := got.Properties[0]
	assert.Equal(t, "Casa Mar", p.PropertyName)
	assert.Equal(t, 2, p.Reservations)
	assert.Equal(t, 6, p.BookedNights)
	assert.Equal(t, 30, p.WindowNights)
	assert.Equal(t, "20.00", p.OccupancyRate.StringFixed(2))

	// 450 + 300 gross; 450 - 60 - 12.60 VAT = 377.40 required for Booking
	assert.Equal(t, "750.00", p.GrossTotal.StringFixed(2))
	assert.Equal(t, "677.40", p.RequiredTotal.StringFixed(2))
	assert.Equal(t, "477.40", p.Collected.StringFixed(2))
	assert.Equal(t, "200.00", p.Pending.StringFixed(2))
	assert.Equal(t, "80.00", p.Expenses.StringFixed(2))
	assert.Equal(t, "397.40", p.NetIncome.StringFixed(2))
	assert.Equal(t, 1, p.StatusCounts[valueobject.SettlementPaid])
	assert.Equal(t, 1, p.StatusCounts[valueobject.SettlementPartial])
	assert.Equal(t, 0, p.StatusCounts[valueobject.SettlementPending])

	assert.Equal(t, p.Figures.GrossTotal.String(), got.Totals.GrossTotal.String())
	assert.Equal(t, "20.00", got.Totals.OccupancyRate.StringFixed(2))
}

func TestGetPropertyDashboardUseCase_Validation(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("inverted window", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(ctx, GetPropertyDashboardInput{OwnerID: owner, Start: date("2024-06-30"), End: date("2024-06-01")})
		var dshErr *domainerror.DashboardError
		require.ErrorAs(t, err, &dshErr)
		assert.Equal(t, domainerror.ErrCodeInvalidDateRange, dshErr.Code)
	})

	t.Run("window too long", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(ctx, GetPropertyDashboardInput{OwnerID: owner, Start: date("2020-01-01"), End: date("2024-01-01")})
		assert.ErrorIs(t, err, domainerror.ErrWindowTooLong)
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.properties.EXPECT().FindByID(ctx, owner, id).Return(nil, domainerror.ErrPropertyNotFound)

		_, err := f.uc.Execute(ctx, GetPropertyDashboardInput{OwnerID: owner, PropertyID: &id, Start: date("2024-06-01"), End: date("2024-06-30")})
		var dshErr *domainerror.DashboardError
		require.ErrorAs(t, err, &dshErr)
		assert.Equal(t, domainerror.ErrCodeDashboardPropertyNotFound, dshErr.Code)
	})
}
