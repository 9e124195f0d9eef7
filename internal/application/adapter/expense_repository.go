package adapter

//go:generate mockgen -source=expense_repository.go -destination=mocks/mock_expense_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	OwnerID    uuid.UUID
	PropertyID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Category   string
}

// ExpenseRepository defines the interface for expense persistence.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Expense, error)
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// SumByFilter totals the amounts matching the filter.
	SumByFilter(ctx context.Context, filter ExpenseFilter) (decimal.Decimal, error)

	// Delete soft-deletes an expense.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
