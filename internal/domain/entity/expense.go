// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a cost attributed to a property (cleaning, supplies, repairs...).
type Expense struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	PropertyID  uuid.UUID
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(ownerID, propertyID uuid.UUID, date time.Time, category, description string, amount decimal.Decimal) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		PropertyID:  propertyID,
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
