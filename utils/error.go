package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// ErrUnauthenticated means the credential is missing or malformed.
	ErrUnauthenticated = errors.New("unauthorized access")
	// ErrForbidden covers invalid or expired credentials and denied access.
	ErrForbidden = errors.New("forbidden access")
	ErrNotFound  = errors.New("not found")
	// ErrInvalidInput is returned for malformed ids and request bodies.
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	// ErrUpstream wraps store and payment-provider failures.
	ErrUpstream = errors.New("upstream failure")
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.FullPath()))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// StatusFor maps an error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the public message for a status. Upstream details are
// never sent to the client.
func messageFor(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "UnAuthorized access"
	case http.StatusForbidden:
		return "Forbidden access"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusConflict:
		return "Conflict"
	default:
		return "Internal Server Error"
	}
}

// RespondError logs err and aborts the request with the mapped status.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	status := StatusFor(err)
	details := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		details = ""
	} else {
		logger.Warn(messageFor(status), zap.String("path", c.FullPath()), zap.String("details", details))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: messageFor(status), Details: details})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, logger *zap.Logger, status int, message string, details string) {
	logger.Warn(message, zap.String("details", details))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}
