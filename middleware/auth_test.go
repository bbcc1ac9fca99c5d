package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(issuer *utils.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.GET("/private", JWTAuthMiddleware(issuer, zap.NewNop()), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "ctxEmail": c.GetString(EmailKey)})
	})
	return r
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer   abc  ", "abc", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		token, err := ParseBearer(tt.header)
		if tt.ok {
			require.NoError(t, err, tt.header)
			assert.Equal(t, tt.token, token)
		} else {
			assert.ErrorIs(t, err, utils.ErrUnauthenticated, tt.header)
		}
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	valid, err := issuer.GenerateToken("a@x.com")
	require.NoError(t, err)

	expired, err := utils.NewTokenIssuer("secret", -time.Minute).GenerateToken("a@x.com")
	require.NoError(t, err)

	foreign, err := utils.NewTokenIssuer("other", time.Hour).GenerateToken("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusForbidden},
		{"foreign signature", "Bearer " + foreign, http.StatusForbidden},
		{"garbage token", "Bearer not.a.token", http.StatusForbidden},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	r := newAuthRouter(issuer)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"email":"a@x.com","ctxEmail":"a@x.com"}`, w.Body.String())
			}
		})
	}
}
