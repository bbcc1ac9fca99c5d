package handlers

import (
	"fmt"
	"net/http"

	"bookhouse/middleware"
	"bookhouse/models"
	"bookhouse/services/booking"
	"bookhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking gateway and the payment confirmation.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles POST /booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}
	res, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetBookingsHandler handles GET /booking?email=. Callers only see their own bookings.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		utils.RespondError(c, logger, fmt.Errorf("%w: no verified claims", utils.ErrUnauthenticated))
		return
	}
	bookings, err := h.Service.GetBookingsByOwner(c.Request.Context(), c.Query("email"), claims.Email)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /booking/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmPaymentHandler handles PATCH /booking/:id.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.PaymentConfirmation
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid payment", err.Error())
		return
	}
	updated, err := h.Service.ConfirmPayment(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetPaymentsHandler handles GET /booking/:id/payments.
func (h *BookingHandler) GetPaymentsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	payments, err := h.Service.GetPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
