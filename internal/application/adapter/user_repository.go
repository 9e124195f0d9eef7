// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// UserRepository defines the interface for operator account persistence.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
