package handlers

import (
	"errors"
	"io"
	"net/http"

	"bookhouse/services/user"
	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the user/role registry.
type UserHandler struct {
	UserService user.UserService
	Logger      *zap.Logger
}

func NewUserHandler(us user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserService: us, Logger: logger}
}

// GetAllUsersHandler handles GET /user.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdminHandler handles GET /admin/:email.
func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PromoteAdminHandler handles PUT /user/admin/:email.
func (h *UserHandler) PromoteAdminHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	res, err := h.UserService.PromoteToAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpsertProfileHandler handles PUT /user/:email. It accepts any JSON object
// as profile fields and answers with the update result and a fresh token.
func (h *UserHandler) UpsertProfileHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	fields := map[string]interface{}{}
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid profile", err.Error())
		return
	}
	resp, err := h.UserService.UpsertProfile(c.Request.Context(), c.Param("email"), fields)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
