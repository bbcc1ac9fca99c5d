package handlers

import (
	"bookhouse/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the auth stages that guard them.
type HandlerBundle struct {
	Verifier middleware.TokenVerifier
	Roles    middleware.RoleLookup

	// Payment endpoints
	CreatePaymentIntentHandler gin.HandlerFunc

	// Catalog endpoints
	GetServicesHandler gin.HandlerFunc
	GetServiceHandler  gin.HandlerFunc
	GetBooksHandler    gin.HandlerFunc
	AddBookHandler     gin.HandlerFunc
	DeleteBookHandler  gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler  gin.HandlerFunc
	GetBookingsHandler    gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc
	GetPaymentsHandler    gin.HandlerFunc

	// User endpoints
	GetAllUsersHandler   gin.HandlerFunc
	IsAdminHandler       gin.HandlerFunc
	PromoteAdminHandler  gin.HandlerFunc
	UpsertProfileHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handlers' methods into a bundle.
func NewHandlerBundle(verifier middleware.TokenVerifier, roles middleware.RoleLookup,
	bh *BookingHandler, uh *UserHandler, ch *CatalogHandler, ph *PaymentHandler) *HandlerBundle {
	return &HandlerBundle{
		Verifier: verifier,
		Roles:    roles,

		CreatePaymentIntentHandler: ph.CreatePaymentIntentHandler,

		GetServicesHandler: ch.GetServicesHandler,
		GetServiceHandler:  ch.GetServiceHandler,
		GetBooksHandler:    ch.GetBooksHandler,
		AddBookHandler:     ch.AddBookHandler,
		DeleteBookHandler:  ch.DeleteBookHandler,

		CreateBookingHandler:  bh.CreateBookingHandler,
		GetBookingsHandler:    bh.GetBookingsHandler,
		GetBookingHandler:     bh.GetBookingHandler,
		ConfirmPaymentHandler: bh.ConfirmPaymentHandler,
		GetPaymentsHandler:    bh.GetPaymentsHandler,

		GetAllUsersHandler:   uh.GetAllUsersHandler,
		IsAdminHandler:       uh.IsAdminHandler,
		PromoteAdminHandler:  uh.PromoteAdminHandler,
		UpsertProfileHandler: uh.UpsertProfileHandler,
	}
}
