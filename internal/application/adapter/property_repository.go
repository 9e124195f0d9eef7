package adapter

//go:generate mockgen -source=property_repository.go -destination=mocks/mock_property_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence.
// Every method is scoped to the owning tenant.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Property, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error

	// Delete soft-deletes a property.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
