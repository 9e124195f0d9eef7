// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. Its ID is the tenant that owns properties,
// channels, reservations, payments and expenses.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	Currency        string
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultCurrency is the currency assigned to new accounts.
const DefaultCurrency = "EUR"

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		Currency:        DefaultCurrency,
		TermsAcceptedAt: termsAcceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
