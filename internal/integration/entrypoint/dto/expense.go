package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/usecase/expense"
	"github.com/rentaldesk/backend/internal/domain/entity"
)

// CreateExpenseRequest is the body of POST /expenses.
type CreateExpenseRequest struct {
	PropertyID  string          `json:"property_id" binding:"required,uuid"`
	Date        *string         `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    string          `json:"category" binding:"max=50"`
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
}

// ToInput converts the request for the create use case.
func (r CreateExpenseRequest) ToInput(ownerID uuid.UUID) (expense.CreateExpenseInput, error) {
	propertyID, err := uuid.Parse(r.PropertyID)
	if err != nil {
		return expense.CreateExpenseInput{}, fmt.Errorf("property_id: %w", err)
	}
	date, err := ParseOptionalDate(r.Date)
	if err != nil {
		return expense.CreateExpenseInput{}, fmt.Errorf("date: %w", err)
	}
	return expense.CreateExpenseInput{
		OwnerID:     ownerID,
		PropertyID:  propertyID,
		Date:        date,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		Notes:       r.Notes,
	}, nil
}

// ListExpensesQuery holds the query of GET /expenses.
type ListExpensesQuery struct {
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Category   string `form:"category"`
}

// ToInput converts the query for the list use case.
func (q ListExpensesQuery) ToInput(ownerID uuid.UUID) (expense.ListExpensesInput, error) {
	propertyID, err := parseOptionalUUID(&q.PropertyID)
	if err != nil {
		return expense.ListExpensesInput{}, fmt.Errorf("property_id: %w", err)
	}
	start, err := ParseOptionalDate(&q.StartDate)
	if err != nil {
		return expense.ListExpensesInput{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseOptionalDate(&q.EndDate)
	if err != nil {
		return expense.ListExpensesInput{}, fmt.Errorf("end_date: %w", err)
	}
	return expense.ListExpensesInput{
		OwnerID:    ownerID,
		PropertyID: propertyID,
		StartDate:  start,
		EndDate:    end,
		Category:   q.Category,
	}, nil
}

// ExpenseResponse represents an expense.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseListResponse is a filtered list of expenses and their sum.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts an Expense entity to its response.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		PropertyID:  e.PropertyID.String(),
		Date:        FormatDate(e.Date),
		Category:    e.Category,
		Description: e.Description,
		Amount:      Money(e.Amount),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseListResponse converts the list output.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(output.Expenses))
	for _, e := range output.Expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return ExpenseListResponse{Expenses: items, Total: Money(output.Total)}
}
