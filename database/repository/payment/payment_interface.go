package paymentRepo

import (
	"context"

	"bookhouse/models"
)

// PaymentRepository stores payment artifacts. Artifacts are never updated.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (string, error)
	GetByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error)
}
