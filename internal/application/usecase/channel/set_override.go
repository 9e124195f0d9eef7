package channel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// SetOverrideInput represents the commission percentages of a channel on one
// property. A nil percentage means no commission for that leg.
type SetOverrideInput struct {
	OwnerID                     uuid.UUID
	PropertyID                  uuid.UUID
	ChannelID                   uuid.UUID
	ChannelCommissionPercent    *decimal.Decimal
	CollectionCommissionPercent *decimal.Decimal
}

// SetOverrideUseCase creates or replaces a property-channel override.
type SetOverrideUseCase struct {
	channelRepo  adapter.ChannelRepository
	propertyRepo adapter.PropertyRepository
}

// NewSetOverrideUseCase creates a new SetOverrideUseCase instance.
func NewSetOverrideUseCase(channelRepo adapter.ChannelRepository, propertyRepo adapter.PropertyRepository) *SetOverrideUseCase {
	return &SetOverrideUseCase{
		channelRepo:  channelRepo,
		propertyRepo: propertyRepo,
	}
}

// Execute performs the upsert.
func (uc *SetOverrideUseCase) Execute(ctx context.Context, input SetOverrideInput) (*entity.PropertyChannel, error) {
	for _, pct := range []*decimal.Decimal{input.ChannelCommissionPercent, input.CollectionCommissionPercent} {
		if pct != nil && pct.IsNegative() {
			return nil, domainerror.NewChannelError(
				domainerror.ErrCodeInvalidCommissionPercent,
				"commission percentages cannot be negative",
				domainerror.ErrInvalidCommissionPercent,
			)
		}
	}

	if err := ensureProperty(ctx, uc.propertyRepo, input.OwnerID, input.PropertyID); err != nil {
		return nil, err
	}
	if _, err := uc.channelRepo.FindByID(ctx, input.OwnerID, input.ChannelID); err != nil {
		if errors.Is(err, domainerror.ErrChannelNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}

	override := &entity.PropertyChannel{
		PropertyID:                  input.PropertyID,
		ChannelID:                   input.ChannelID,
		ChannelCommissionPercent:    input.ChannelCommissionPercent,
		CollectionCommissionPercent: input.CollectionCommissionPercent,
		UpdatedAt:                   time.Now().UTC(),
	}
	if err := uc.channelRepo.UpsertOverride(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to save override: %w", err)
	}
	return override, nil
}

func ensureProperty(ctx context.Context, repo adapter.PropertyRepository, ownerID, propertyID uuid.UUID) error {
	if _, err := repo.FindByID(ctx, ownerID, propertyID); err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return domainerror.NewPropertyError(
				domainerror.ErrCodePropertyNotFound,
				"property not found",
				domainerror.ErrPropertyNotFound,
			)
		}
		return fmt.Errorf("failed to find property: %w", err)
	}
	return nil
}
