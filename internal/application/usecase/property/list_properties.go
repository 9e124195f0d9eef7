package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ListPropertiesUseCase lists the properties of an operator by name.
type ListPropertiesUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(propertyRepo adapter.PropertyRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{propertyRepo: propertyRepo}
}

// Execute lists the properties.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	properties, err := uc.propertyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}
