package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// CreateChannelRequest is the body of POST /channels.
type CreateChannelRequest struct {
	Name       string           `json:"name" binding:"required,max=100"`
	VATPercent *decimal.Decimal `json:"vat_percent"`
}

// SetOverrideRequest is the body of PUT /properties/:id/channels/:channel_id.
// A null percentage means the commission leg does not apply.
type SetOverrideRequest struct {
	ChannelCommissionPercent    *decimal.Decimal `json:"channel_commission_percent"`
	CollectionCommissionPercent *decimal.Decimal `json:"collection_commission_percent"`
}

// ChannelResponse represents a channel.
type ChannelResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	VATPercent string    `json:"vat_percent"`
	Direct     bool      `json:"direct"`
	CreatedAt  time.Time `json:"created_at"`
}

// OverrideResponse represents the commission terms of a channel on a property.
type OverrideResponse struct {
	PropertyID                  string    `json:"property_id"`
	ChannelID                   string    `json:"channel_id"`
	ChannelCommissionPercent    *string   `json:"channel_commission_percent"`
	CollectionCommissionPercent *string   `json:"collection_commission_percent"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

// ToChannelResponse converts a Channel entity to its response.
func ToChannelResponse(c *entity.Channel) ChannelResponse {
	return ChannelResponse{
		ID:         c.ID.String(),
		Name:       c.Name,
		VATPercent: Money(c.VATPercent),
		Direct:     c.IsDirect(),
		CreatedAt:  c.CreatedAt,
	}
}

// ToChannelListResponse converts a slice of channels.
func ToChannelListResponse(channels []*entity.Channel) []ChannelResponse {
	out := make([]ChannelResponse, 0, len(channels))
	for _, c := range channels {
		out = append(out, ToChannelResponse(c))
	}
	return out
}

// ToOverrideResponse converts a PropertyChannel entity to its response.
func ToOverrideResponse(o *entity.PropertyChannel) OverrideResponse {
	return OverrideResponse{
		PropertyID:                  o.PropertyID.String(),
		ChannelID:                   o.ChannelID.String(),
		ChannelCommissionPercent:    OptionalMoney(o.ChannelCommissionPercent),
		CollectionCommissionPercent: OptionalMoney(o.CollectionCommissionPercent),
		UpdatedAt:                   o.UpdatedAt,
	}
}

// ToOverrideListResponse converts a slice of overrides.
func ToOverrideListResponse(overrides []*entity.PropertyChannel) []OverrideResponse {
	out := make([]OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, ToOverrideResponse(o))
	}
	return out
}
