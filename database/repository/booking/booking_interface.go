package bookingRepo

import (
	"context"

	"bookhouse/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a booking and returns its store-assigned id.
	Create(ctx context.Context, booking *models.Booking) (string, error)
	// GetByID retrieves a booking by id. Missing bookings yield utils.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByEmail retrieves every booking owned by email.
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// MarkPaid sets paid and transactionId and returns the updated booking.
	// With onlyUnpaid the update matches only bookings not yet paid.
	MarkPaid(ctx context.Context, id, transactionID string, onlyUnpaid bool) (*models.Booking, error)
}
