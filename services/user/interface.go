package user

import (
	"context"

	userRepo "bookhouse/database/repository/user"
	"bookhouse/models"

	"go.uber.org/zap"
)

// UserService defines business logic for the user/role registry.
type UserService interface {
	// UpsertProfile writes the profile fields for email, creating the user when
	// absent, and issues a fresh access token for that email.
	UpsertProfile(ctx context.Context, email string, fields map[string]interface{}) (*ProfileResponse, error)
	// PromoteToAdmin grants the admin role to email.
	PromoteToAdmin(ctx context.Context, email string) (*models.UpdateResult, error)
	// IsAdmin reports whether email holds the admin role. Unknown emails are not admins.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// GetUserByEmail retrieves a user or utils.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAllUsers lists every user.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// TokenGenerator issues access tokens.
type TokenGenerator interface {
	GenerateToken(email string) (string, error)
}

// ProfileResponse is returned by a profile upsert.
type ProfileResponse struct {
	Result *models.UpdateResult `json:"result"`
	Token  string               `json:"token"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenGenerator
	Logger *zap.Logger
}
