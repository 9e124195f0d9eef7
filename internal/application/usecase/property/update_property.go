package property

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// UpdatePropertyInput represents the input for property update.
type UpdatePropertyInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
	Name       *string
	Address    *string
	MaxGuests  *int
}

// UpdatePropertyUseCase handles property update logic.
type UpdatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewUpdatePropertyUseCase creates a new UpdatePropertyUseCase instance.
func NewUpdatePropertyUseCase(propertyRepo adapter.PropertyRepository) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{propertyRepo: propertyRepo}
}

// Execute performs the property update.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, input UpdatePropertyInput) (*entity.Property, error) {
	p, err := uc.propertyRepo.FindByID(ctx, input.OwnerID, input.PropertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		p.Address = strings.TrimSpace(*input.Address)
	}
	if input.MaxGuests != nil {
		p.MaxGuests = *input.MaxGuests
	}
	if err := validate(p); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := uc.propertyRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return p, nil
}
