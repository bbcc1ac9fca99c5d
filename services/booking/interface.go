package booking

import (
	"context"

	bookingRepo "bookhouse/database/repository/booking"
	paymentRepo "bookhouse/database/repository/payment"
	"bookhouse/models"

	"go.uber.org/zap"
)

// BookingService defines the booking gateway and the payment confirmation flow.
type BookingService interface {
	CreateBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	// GetBookingsByOwner lists the bookings of email for a caller whose token
	// carries callerEmail. The two must match exactly.
	GetBookingsByOwner(ctx context.Context, email, callerEmail string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// ConfirmPayment records the payment artifact and marks the booking paid.
	ConfirmPayment(ctx context.Context, bookingID string, payment models.PaymentConfirmation) (*models.Booking, error)
	GetPayments(ctx context.Context, bookingID string) ([]models.Payment, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	// Strict checks the booking before writing the artifact and only marks
	// unpaid bookings, so a retried or concurrent confirmation answers
	// utils.ErrConflict instead of appending a duplicate.
	Strict bool
	Logger *zap.Logger
}
