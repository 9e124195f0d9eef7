package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	OwnerID    uuid.UUID
	PropertyID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Category   string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the expenses and their total.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	filter := adapter.ExpenseFilter{
		OwnerID:    input.OwnerID,
		PropertyID: input.PropertyID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Category:   input.Category,
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ListExpensesOutput{Expenses: expenses, Total: total}, nil
}
