package channel

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ListOverridesInput represents the input for listing the overrides of a property.
type ListOverridesInput struct {
	OwnerID    uuid.UUID
	PropertyID uuid.UUID
}

// ListOverridesUseCase lists the commission overrides configured on a property.
type ListOverridesUseCase struct {
	channelRepo  adapter.ChannelRepository
	propertyRepo adapter.PropertyRepository
}

// NewListOverridesUseCase creates a new ListOverridesUseCase instance.
func NewListOverridesUseCase(channelRepo adapter.ChannelRepository, propertyRepo adapter.PropertyRepository) *ListOverridesUseCase {
	return &ListOverridesUseCase{
		channelRepo:  channelRepo,
		propertyRepo: propertyRepo,
	}
}

// Execute lists the overrides.
func (uc *ListOverridesUseCase) Execute(ctx context.Context, input ListOverridesInput) ([]*entity.PropertyChannel, error) {
	if err := ensureProperty(ctx, uc.propertyRepo, input.OwnerID, input.PropertyID); err != nil {
		return nil, err
	}

	overrides, err := uc.channelRepo.FindOverridesByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	return overrides, nil
}
