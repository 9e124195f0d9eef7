package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	OwnerID   uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if err := uc.expenseRepo.Delete(ctx, input.OwnerID, input.ExpenseID); err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
