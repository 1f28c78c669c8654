package ports

import (
	"context"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, user *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, user *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no user has the id.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
