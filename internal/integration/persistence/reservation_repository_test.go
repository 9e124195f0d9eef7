package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

func TestReservationRepository_TenantScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(newTestDB(t))

	owner, other := uuid.New(), uuid.New()
	r := newReservation(owner, uuid.New(), "Ana", "2024-06-01", "2024-06-05")
	require.NoError(t, repo.Create(ctx, r))

	got, err := repo.FindByID(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.GuestName)
	assert.Equal(t, day("2024-06-01"), got.CheckIn)
	assert.True(t, decimal.RequireFromString("200").Equal(got.BaseAmount))

	_, err = repo.FindByID(ctx, other, r.ID)
	assert.ErrorIs(t, err, domainerror.ErrReservationNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, other, r.ID), domainerror.ErrReservationNotFound)
}

func TestReservationRepository_FindOverlapping(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(newTestDB(t))
	owner, property := uuid.New(), uuid.New()

	before := newReservation(owner, property, "Before", "2024-05-20", "2024-05-31")
	touching := newReservation(owner, property, "Touching", "2024-05-28", "2024-06-01")
	inside := newReservation(owner, property, "Inside", "2024-06-03", "2024-06-06")
	otherProperty := newReservation(owner, uuid.New(), "Elsewhere", "2024-06-03", "2024-06-06")
	for _, r := range []*entity.Reservation{before, touching, inside, otherProperty} {
		require.NoError(t, repo.Create(ctx, r))
	}

	got, err := repo.FindOverlapping(ctx, owner, property, day("2024-06-01"), day("2024-06-10"))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, touching.ID, got[0].ID)
	assert.Equal(t, inside.ID, got[1].ID)
}

func TestReservationRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(newTestDB(t))
	owner, property := uuid.New(), uuid.New()

	june := newReservation(owner, property, "Maria Lopez", "2024-06-01", "2024-06-05")
	july := newReservation(owner, property, "John Smith", "2024-07-01", "2024-07-05")
	july.PaymentStatus = valueobject.SettlementPaid
	cancelled := newReservation(owner, property, "Maria Garcia", "2024-08-01", "2024-08-05")
	cancelled.Status = entity.ReservationStatusCancelled
	for _, r := range []*entity.Reservation{june, july, cancelled} {
		require.NoError(t, repo.Create(ctx, r))
	}
	page := adapter.ReservationPagination{Page: 1, Limit: 10}

	t.Run("search by guest", func(t *testing.T) {
		res, err := repo.FindByFilter(ctx, adapter.ReservationFilter{OwnerID: owner, Search: "maria"}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Total)
		assert.Equal(t, cancelled.ID, res.Reservations[0].ID, "newest check-in first")
	})

	t.Run("payment status", func(t *testing.T) {
		paid := valueobject.SettlementPaid
		res, err := repo.FindByFilter(ctx, adapter.ReservationFilter{OwnerID: owner, PaymentStatus: &paid}, page)
		require.NoError(t, err)
		require.Len(t, res.Reservations, 1)
		assert.Equal(t, july.ID, res.Reservations[0].ID)
	})

	t.Run("stay overlap is half-open", func(t *testing.T) {
		from, to := day("2024-06-05"), day("2024-07-01")
		res, err := repo.FindByFilter(ctx, adapter.ReservationFilter{OwnerID: owner, From: &from, To: &to}, page)
		require.NoError(t, err)
		assert.Empty(t, res.Reservations)
	})

	t.Run("pagination", func(t *testing.T) {
		res, err := repo.FindByFilter(ctx, adapter.ReservationFilter{OwnerID: owner}, adapter.ReservationPagination{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Total)
		assert.Equal(t, 2, res.TotalPages)
		require.Len(t, res.Reservations, 1)
		assert.Equal(t, june.ID, res.Reservations[0].ID)
	})
}

func TestReservationRepository_FindByIDWithChannel(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewReservationRepository(db)
	channels := NewChannelRepository(db)
	owner, property := uuid.New(), uuid.New()

	booking := entity.NewChannel(owner, "Booking", decimal.NewFromInt(21))
	require.NoError(t, channels.Create(ctx, booking))
	ten := decimal.NewFromInt(10)
	require.NoError(t, channels.UpsertOverride(ctx, &entity.PropertyChannel{
		PropertyID:               property,
		ChannelID:                booking.ID,
		ChannelCommissionPercent: &ten,
	}))

	r := newReservation(owner, property, "Ana", "2024-06-01", "2024-06-05")
	r.ChannelID = &booking.ID
	require.NoError(t, repo.Create(ctx, r))

	got, err := repo.FindByIDWithChannel(ctx, owner, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Channel)
	assert.Equal(t, "Booking", got.ChannelName())
	require.NotNil(t, got.Override)
	require.NotNil(t, got.Override.ChannelCommissionPercent)
	assert.True(t, ten.Equal(*got.Override.ChannelCommissionPercent))
	assert.Nil(t, got.Override.CollectionCommissionPercent)

	direct := newReservation(owner, property, "Luis", "2024-07-01", "2024-07-03")
	direct.ExternalSource = "Propio"
	require.NoError(t, repo.Create(ctx, direct))

	got, err = repo.FindByIDWithChannel(ctx, owner, direct.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Channel)
	assert.Nil(t, got.Override)
	assert.Equal(t, "Propio", got.ChannelName())
}

func TestReservationRepository_UpdatePaymentStatusAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(newTestDB(t))
	owner, property := uuid.New(), uuid.New()

	r := newReservation(owner, property, "Ana", "2024-06-01", "2024-06-05")
	require.NoError(t, repo.Create(ctx, r))

	require.NoError(t, repo.UpdatePaymentStatus(ctx, r.ID, valueobject.SettlementPartial))
	got, err := repo.FindByID(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.SettlementPartial, got.PaymentStatus)

	count, err := repo.CountActiveByProperty(ctx, owner, property)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, owner, r.ID))
	_, err = repo.FindByID(ctx, owner, r.ID)
	assert.ErrorIs(t, err, domainerror.ErrReservationNotFound)

	overlapping, err := repo.FindOverlapping(ctx, owner, property, day("2024-06-01"), day("2024-06-05"))
	require.NoError(t, err)
	assert.Empty(t, overlapping)
}

func TestReservationRepository_CompletePastStays(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(newTestDB(t))
	owner, property := uuid.New(), uuid.New()

	past := newReservation(owner, property, "Past", "2024-05-01", "2024-05-05")
	endingToday := newReservation(owner, property, "Today", "2024-05-08", "2024-05-10")
	ongoing := newReservation(owner, property, "Ongoing", "2024-05-09", "2024-05-12")
	cancelled := newReservation(owner, property, "Cancelled", "2024-04-01", "2024-04-03")
	cancelled.Status = entity.ReservationStatusCancelled
	for _, r := range []*entity.Reservation{past, endingToday, ongoing, cancelled} {
		require.NoError(t, repo.Create(ctx, r))
	}

	n, err := repo.CompletePastStays(ctx, day("2024-05-10"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	for id, want := range map[uuid.UUID]entity.ReservationStatus{
		past.ID:        entity.ReservationStatusCompleted,
		endingToday.ID: entity.ReservationStatusCompleted,
		ongoing.ID:     entity.ReservationStatusConfirmed,
		cancelled.ID:   entity.ReservationStatusCancelled,
	} {
		got, err := repo.FindByID(ctx, owner, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status, got.GuestName)
	}
}
