package handlers

import (
	"net/http"

	"bookhouse/models"
	"bookhouse/services/catalog"
	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves services and the admin book catalog.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// GetServicesHandler handles GET /service.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.Service.GetServices(c.Request.Context())
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /service/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	service, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// GetBooksHandler handles GET /book.
func (h *CatalogHandler) GetBooksHandler(c *gin.Context) {
	books, err := h.Service.GetBooks(c.Request.Context())
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// AddBookHandler handles POST /book.
func (h *CatalogHandler) AddBookHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.Book
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid book", err.Error())
		return
	}
	res, err := h.Service.AddBook(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBookHandler handles DELETE /book/:email.
func (h *CatalogHandler) DeleteBookHandler(c *gin.Context) {
	res, err := h.Service.DeleteBookByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, res)
}
