package userRepo

import (
	"context"

	"bookhouse/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email. Missing users yield utils.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpsertProfile sets fields on the user keyed by email, creating it when absent.
	UpsertProfile(ctx context.Context, email string, fields map[string]interface{}) (*models.UpdateResult, error)
	// SetRole sets the role of an existing user. Unknown emails match nothing.
	SetRole(ctx context.Context, email, role string) (*models.UpdateResult, error)
}
