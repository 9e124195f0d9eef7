package adapter

//go:generate mockgen -source=channel_repository.go -destination=mocks/mock_channel_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ChannelRepository defines the interface for channel and commission
// override persistence. Every method is scoped to the owning tenant.
type ChannelRepository interface {
	Create(ctx context.Context, channel *entity.Channel) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Channel, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Channel, error)
	ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// UpsertOverride creates or replaces the commission override of a channel for a property.
	UpsertOverride(ctx context.Context, override *entity.PropertyChannel) error

	// FindOverride returns the override for the pair, or nil when none exists.
	FindOverride(ctx context.Context, propertyID, channelID uuid.UUID) (*entity.PropertyChannel, error)

	// FindOverridesByProperty lists every override of a property.
	FindOverridesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.PropertyChannel, error)
}
