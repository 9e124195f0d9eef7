// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// Channel is a distribution channel (an OTA or the operator's own channel).
type Channel struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	VATPercent decimal.Decimal // VAT charged on the channel's commissions
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewChannel creates a new Channel entity.
func NewChannel(ownerID uuid.UUID, name string, vatPercent decimal.Decimal) *Channel {
	now := time.Now().UTC()
	return &Channel{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       name,
		VATPercent: vatPercent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsDirect reports whether the channel is the operator's own channel.
func (c *Channel) IsDirect() bool {
	return valueobject.IsDirectChannel(c.Name)
}

// PropertyChannel holds the commission overrides of a channel for one property.
// A nil percentage means the leg carries no commission.
type PropertyChannel struct {
	PropertyID                  uuid.UUID
	ChannelID                   uuid.UUID
	ChannelCommissionPercent    *decimal.Decimal // "sale" leg
	CollectionCommissionPercent *decimal.Decimal // "charge" leg
	UpdatedAt                   time.Time
}
