package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(newTestDB(t))
	owner := uuid.New()
	first, second := uuid.New(), uuid.New()

	paidAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	deposit := entity.NewPayment(owner, first, decimal.RequireFromString("63.70"), entity.PaymentMethodTransfer, valueobject.PaymentStatusCompleted, paidAt)
	balance := entity.NewPayment(owner, first, decimal.RequireFromString("100"), entity.PaymentMethodCard, valueobject.PaymentStatusPending, paidAt.Add(time.Hour))
	other := entity.NewPayment(owner, second, decimal.RequireFromString("50"), entity.PaymentMethodCash, valueobject.PaymentStatusRefunded, paidAt)
	for _, p := range []*entity.Payment{deposit, balance, other} {
		require.NoError(t, repo.Create(ctx, p))
	}

	byReservation, err := repo.FindByReservation(ctx, first)
	require.NoError(t, err)
	require.Len(t, byReservation, 2)
	assert.Equal(t, deposit.ID, byReservation[0].ID)
	assert.True(t, decimal.RequireFromString("63.7").Equal(byReservation[0].Amount))

	completed := valueobject.PaymentStatusCompleted
	filtered, err := repo.FindByFilter(ctx, adapter.PaymentFilter{OwnerID: owner, Status: &completed})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, deposit.ID, filtered[0].ID)

	grouped, err := repo.FindByReservations(ctx, []uuid.UUID{first, second})
	require.NoError(t, err)
	assert.Len(t, grouped[first], 2)
	assert.Len(t, grouped[second], 1)

	require.NoError(t, repo.Delete(ctx, owner, balance.ID))
	_, err = repo.FindByID(ctx, owner, balance.ID)
	assert.ErrorIs(t, err, domainerror.ErrPaymentNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New(), deposit.ID), domainerror.ErrPaymentNotFound)

	empty, err := repo.FindByReservations(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
