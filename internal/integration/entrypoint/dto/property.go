package dto

import (
	"time"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// CreatePropertyRequest is the body of POST /properties.
type CreatePropertyRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Address   string `json:"address" binding:"max=255"`
	MaxGuests int    `json:"max_guests" binding:"gte=0"`
}

// UpdatePropertyRequest is the body of PATCH /properties/:id.
type UpdatePropertyRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	MaxGuests *int    `json:"max_guests" binding:"omitempty,gte=0"`
}

// PropertyResponse represents a property.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	MaxGuests int       `json:"max_guests"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPropertyResponse converts a Property entity to its response.
func ToPropertyResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Address:   p.Address,
		MaxGuests: p.MaxGuests,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPropertyListResponse converts a slice of properties.
func ToPropertyListResponse(properties []*entity.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, ToPropertyResponse(p))
	}
	return out
}
