package handlers

import (
	"context"
	"net/http"

	"bookhouse/models"
	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntentCreator creates a payment intent for a price.
type IntentCreator interface {
	CreateForPrice(ctx context.Context, price float64) (string, error)
}

// PaymentHandler serves payment intent creation.
type PaymentHandler struct {
	Intents IntentCreator
	Logger  *zap.Logger
}

func NewPaymentHandler(intents IntentCreator, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Intents: intents, Logger: logger}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid payment intent request", err.Error())
		return
	}
	secret, err := h.Intents.CreateForPrice(c.Request.Context(), input.Price)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
