package repository

import (
	"context"

	"newsroom/internal/domain/entity"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error
	// Get retrieves a user by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByUsername retrieves a user by username. Returns (nil, nil) if not found.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
