package middleware

import (
	"fmt"
	"strings"

	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthMiddleware.
const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// TokenVerifier validates a raw access token.
type TokenVerifier interface {
	ValidateToken(token string) (*utils.Claims, error)
}

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", fmt.Errorf("%w: missing or invalid Authorization header", utils.ErrUnauthenticated)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: empty bearer token", utils.ErrUnauthenticated)
	}
	return token, nil
}

// JWTAuthMiddleware answers 401 for a missing or malformed Authorization
// header and 403 for a token that fails verification. Verified claims are
// stored in the context.
func JWTAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			utils.RespondError(c, LoggerFrom(c, logger), err)
			return
		}

		claims, err := verifier.ValidateToken(token)
		if err != nil {
			utils.RespondError(c, LoggerFrom(c, logger), err)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWTAuthMiddleware.
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}
