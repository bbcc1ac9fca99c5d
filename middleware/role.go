package middleware

import (
	"context"
	"errors"
	"fmt"

	"bookhouse/models"
	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleLookup resolves the stored user behind a verified email.
type RoleLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAdmin lets the request through only when the caller's stored role
// is admin. It must run after JWTAuthMiddleware. A caller whose email has no
// user record is denied with 403.
func RequireAdmin(users RoleLookup, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			utils.RespondError(c, LoggerFrom(c, logger), fmt.Errorf("%w: no verified claims", utils.ErrUnauthenticated))
			return
		}

		u, err := users.GetUserByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				err = fmt.Errorf("%w: no account for %s", utils.ErrForbidden, claims.Email)
			}
			utils.RespondError(c, LoggerFrom(c, logger), err)
			return
		}
		if !u.IsAdmin() {
			utils.RespondError(c, LoggerFrom(c, logger), fmt.Errorf("%w: %s is not an admin", utils.ErrForbidden, claims.Email))
			return
		}
		c.Next()
	}
}
