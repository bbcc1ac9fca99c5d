package booking

import (
	"context"
	"fmt"

	"bookhouse/models"
	"bookhouse/utils"
)

func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	id, err := s.Repo.Create(ctx, &booking)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// GetBookingsByOwner only serves callers asking for their own bookings.
// The comparison is case sensitive.
func (s *DefaultBookingService) GetBookingsByOwner(ctx context.Context, email, callerEmail string) ([]models.Booking, error) {
	if email == "" || email != callerEmail {
		return nil, fmt.Errorf("%w: bookings of %q requested by %q", utils.ErrForbidden, email, callerEmail)
	}
	return s.Repo.GetByEmail(ctx, email)
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}
