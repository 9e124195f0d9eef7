// Package property contains property-related use cases.
package property

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// MaxNameLength is the longest accepted property name.
const MaxNameLength = 100

// CreatePropertyInput represents the input for property creation.
type CreatePropertyInput struct {
	OwnerID   uuid.UUID
	Name      string
	Address   string
	MaxGuests int // zero means no capacity limit
}

// CreatePropertyUseCase handles property creation logic.
type CreatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(propertyRepo adapter.PropertyRepository) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{propertyRepo: propertyRepo}
}

// Execute performs the property creation.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	p := entity.NewProperty(input.OwnerID, strings.TrimSpace(input.Name), strings.TrimSpace(input.Address), input.MaxGuests)
	if err := validate(p); err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return p, nil
}

func validate(p *entity.Property) error {
	if p.Name == "" || len(p.Name) > MaxNameLength {
		return domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameRequired,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxNameLength),
			domainerror.ErrPropertyNameRequired,
		)
	}
	if p.MaxGuests < 0 {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidMaxGuests,
			"max guests cannot be negative",
			domainerror.ErrInvalidMaxGuests,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewPropertyError(
		domainerror.ErrCodePropertyNotFound,
		"property not found",
		domainerror.ErrPropertyNotFound,
	)
}
