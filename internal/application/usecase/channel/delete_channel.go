package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// DeleteChannelInput represents the input for channel deletion.
type DeleteChannelInput struct {
	OwnerID   uuid.UUID
	ChannelID uuid.UUID
}

// DeleteChannelUseCase deletes a channel no reservation references, together
// with its commission overrides.
type DeleteChannelUseCase struct {
	channelRepo     adapter.ChannelRepository
	reservationRepo adapter.ReservationRepository
}

// NewDeleteChannelUseCase creates a new DeleteChannelUseCase instance.
func NewDeleteChannelUseCase(
	channelRepo adapter.ChannelRepository,
	reservationRepo adapter.ReservationRepository,
) *DeleteChannelUseCase {
	return &DeleteChannelUseCase{
		channelRepo:     channelRepo,
		reservationRepo: reservationRepo,
	}
}

// Execute performs the channel deletion.
func (uc *DeleteChannelUseCase) Execute(ctx context.Context, input DeleteChannelInput) error {
	count, err := uc.reservationRepo.CountByChannel(ctx, input.OwnerID, input.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to count reservations: %w", err)
	}
	if count > 0 {
		return domainerror.NewChannelError(
			domainerror.ErrCodeChannelInUse,
			fmt.Sprintf("channel is used by %d reservations", count),
			domainerror.ErrChannelInUse,
		)
	}

	if err := uc.channelRepo.Delete(ctx, input.OwnerID, input.ChannelID); err != nil {
		if errors.Is(err, domainerror.ErrChannelNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}
