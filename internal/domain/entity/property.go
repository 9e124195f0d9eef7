// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property is a rental unit managed by an operator.
type Property struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Address   string
	MaxGuests int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewProperty creates a new Property entity.
func NewProperty(ownerID uuid.UUID, name, address string, maxGuests int) *Property {
	now := time.Now().UTC()
	return &Property{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Address:   address,
		MaxGuests: maxGuests,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
