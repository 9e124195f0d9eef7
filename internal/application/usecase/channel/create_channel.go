// Package channel contains sales channel and commission override use cases.
package channel

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

// MaxNameLength is the longest accepted channel name.
const MaxNameLength = 50

// CreateChannelInput represents the input for channel creation.
type CreateChannelInput struct {
	OwnerID    uuid.UUID
	Name       string
	VATPercent *decimal.Decimal // nil uses the configured default
}

// CreateChannelUseCase handles channel creation logic.
type CreateChannelUseCase struct {
	channelRepo       adapter.ChannelRepository
	defaultVATPercent decimal.Decimal
}

// NewCreateChannelUseCase creates a new CreateChannelUseCase instance.
func NewCreateChannelUseCase(channelRepo adapter.ChannelRepository, defaultVATPercent decimal.Decimal) *CreateChannelUseCase {
	return &CreateChannelUseCase{
		channelRepo:       channelRepo,
		defaultVATPercent: defaultVATPercent,
	}
}

// Execute performs the channel creation.
func (uc *CreateChannelUseCase) Execute(ctx context.Context, input CreateChannelInput) (*entity.Channel, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxNameLength {
		return nil, domainerror.NewChannelError(
			domainerror.ErrCodeChannelNameRequired,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxNameLength),
			domainerror.ErrChannelNameRequired,
		)
	}

	vat := uc.defaultVATPercent
	if input.VATPercent != nil {
		vat = *input.VATPercent
	}
	if vat.IsNegative() {
		return nil, domainerror.NewChannelError(
			domainerror.ErrCodeInvalidCommissionPercent,
			"vat percent cannot be negative",
			domainerror.ErrInvalidCommissionPercent,
		)
	}

	exists, err := uc.channelRepo.ExistsByName(ctx, input.OwnerID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel name: %w", err)
	}
	if exists {
		return nil, domainerror.NewChannelError(
			domainerror.ErrCodeChannelAlreadyExists,
			"a channel with this name already exists",
			domainerror.ErrChannelAlreadyExists,
		)
	}

	channel := entity.NewChannel(input.OwnerID, name, vat)
	if err := uc.channelRepo.Create(ctx, channel); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return channel, nil
}

func notFound() error {
	return domainerror.NewChannelError(
		domainerror.ErrCodeChannelNotFound,
		"channel not found",
		domainerror.ErrChannelNotFound,
	)
}
