package channel

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ListChannelsUseCase lists the channels of an operator.
type ListChannelsUseCase struct {
	channelRepo adapter.ChannelRepository
}

// NewListChannelsUseCase creates a new ListChannelsUseCase instance.
func NewListChannelsUseCase(channelRepo adapter.ChannelRepository) *ListChannelsUseCase {
	return &ListChannelsUseCase{channelRepo: channelRepo}
}

// Execute lists the channels.
func (uc *ListChannelsUseCase) Execute(ctx context.Context, ownerID uuid.UUID) ([]*entity.Channel, error) {
	channels, err := uc.channelRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}
