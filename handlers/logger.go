package handlers

import (
	"bookhouse/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger from the Gin context or falls back
// to the handler's own logger.
func getLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	return middleware.LoggerFrom(c, fallback)
}
