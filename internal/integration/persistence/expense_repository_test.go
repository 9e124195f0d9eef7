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
)

func TestExpenseRepository_SumByFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestDB(t))
	owner, flat, house := uuid.New(), uuid.New(), uuid.New()

	expenses := []*entity.Expense{
		entity.NewExpense(owner, flat, day("2024-06-02"), "cleaning", "Turnover", decimal.RequireFromString("45.50")),
		entity.NewExpense(owner, flat, day("2024-06-20"), "supplies", "Towels", decimal.RequireFromString("30.25")),
		entity.NewExpense(owner, flat, day("2024-07-01"), "cleaning", "Turnover", decimal.RequireFromString("45.50")),
		entity.NewExpense(owner, house, day("2024-06-10"), "repairs", "Boiler", decimal.RequireFromString("120")),
	}
	for _, e := range expenses {
		require.NoError(t, repo.Create(ctx, e))
	}

	start, end := day("2024-06-01"), day("2024-06-30")
	total, err := repo.SumByFilter(ctx, adapter.ExpenseFilter{OwnerID: owner, PropertyID: &flat, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, "75.75", total.StringFixed(2))

	cleaning, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{OwnerID: owner, Category: "cleaning"})
	require.NoError(t, err)
	assert.Len(t, cleaning, 2)

	require.NoError(t, repo.Delete(ctx, owner, expenses[3].ID))
	all, err := repo.SumByFilter(ctx, adapter.ExpenseFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.Equal(t, "121.25", all.StringFixed(2))
}
