// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// Validation constants.
const (
	MaxDescriptionLength = 255
	MaxCategoryLength    = 50
	DefaultCategory      = "other"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	OwnerID     uuid.UUID
	PropertyID  uuid.UUID
	Date        *time.Time // defaults to today
	Category    string
	Description string
	Amount      decimal.Decimal
	Notes       string
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	propertyRepo adapter.PropertyRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, propertyRepo adapter.PropertyRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		propertyRepo: propertyRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.Expense, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" || len(description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			fmt.Sprintf("description is required and must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if _, err := uc.propertyRepo.FindByID(ctx, input.OwnerID, input.PropertyID); err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpensePropertyNotFound,
				"property not found",
				domainerror.ErrPropertyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = DefaultCategory
	}
	category = valueobject.TruncateText(category, MaxCategoryLength)

	e := entity.NewExpense(input.OwnerID, input.PropertyID, valueobject.Day(date), category, description, input.Amount)
	e.Notes = input.Notes

	if err := uc.expenseRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return e, nil
}
