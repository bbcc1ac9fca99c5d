package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookhouse/models"
	"bookhouse/utils"

	"go.uber.org/zap"
)

// protectedFields are never taken from a profile body: the id is store
// owned, the role only changes through PromoteToAdmin and the email comes
// from the path.
var protectedFields = []string{"_id", "role", "email"}

func (s *DefaultUserService) UpsertProfile(ctx context.Context, email string, fields map[string]interface{}) (*ProfileResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", utils.ErrInvalidInput)
	}

	set := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		set[k] = v
	}
	for _, k := range protectedFields {
		if _, ok := set[k]; ok {
			s.Logger.Debug("dropping protected profile field", zap.String("field", k), zap.String("email", email))
			delete(set, k)
		}
	}

	result, err := s.Repo.UpsertProfile(ctx, email, set)
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrUpstream, err)
	}
	return &ProfileResponse{Result: result, Token: token}, nil
}

func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, email string) (*models.UpdateResult, error) {
	result, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		s.Logger.Warn("admin promotion matched no user", zap.String("email", email))
	} else {
		s.Logger.Info("user promoted to admin", zap.String("email", email))
	}
	return result, nil
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.IsAdmin(), nil
}

func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}
