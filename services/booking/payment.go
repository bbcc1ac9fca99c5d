package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookhouse/database/repository"
	"bookhouse/models"
	"bookhouse/utils"

	"go.uber.org/zap"
)

// ConfirmPayment runs the two writes of a payment confirmation:
//
//  1. append the payment artifact
//  2. set paid and transactionId on the booking
//
// The writes are not transactional. When step 2 fails the artifact stays
// behind and the booking remains unpaid; the artifact id is logged so it can
// be reconciled. Without Strict, repeated confirmations append duplicate
// artifacts and the last transactionId written wins.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, bookingID string, payment models.PaymentConfirmation) (*models.Booking, error) {
	if _, err := repository.ParseID(bookingID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(payment.TransactionID) == "" {
		return nil, fmt.Errorf("%w: transactionId is required", utils.ErrInvalidInput)
	}

	logger := s.Logger.With(zap.String("bookingId", bookingID), zap.String("transactionId", payment.TransactionID))

	if s.Strict {
		current, err := s.Repo.GetByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current.Paid {
			return nil, fmt.Errorf("%w: booking %s is already paid", utils.ErrConflict, bookingID)
		}
	}

	paymentID, err := s.Payments.Create(ctx, models.NewPayment(bookingID, payment, time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	// The artifact is written; do not let a client disconnect abandon the
	// booking update.
	updated, err := s.Repo.MarkPaid(context.WithoutCancel(ctx), bookingID, payment.TransactionID, s.Strict)
	if err != nil {
		logger.Error("payment recorded but booking not marked paid",
			zap.String("paymentId", paymentID), zap.Error(err))
		if s.Strict && errors.Is(err, utils.ErrNotFound) {
			return nil, fmt.Errorf("%w: booking %s was paid concurrently", utils.ErrConflict, bookingID)
		}
		return nil, err
	}

	logger.Info("payment confirmed", zap.String("paymentId", paymentID))
	return updated, nil
}

func (s *DefaultBookingService) GetPayments(ctx context.Context, bookingID string) ([]models.Payment, error) {
	if _, err := repository.ParseID(bookingID); err != nil {
		return nil, err
	}
	return s.Payments.GetByBookingID(ctx, bookingID)
}
