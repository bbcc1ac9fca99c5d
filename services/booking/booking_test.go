package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bookhouse/database/repository/memory"
	"bookhouse/models"
	"bookhouse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(strict bool) (*DefaultBookingService, *memory.BookingRepo, *memory.PaymentRepo) {
	bookings := memory.NewBookingRepo()
	payments := memory.NewPaymentRepo()
	return &DefaultBookingService{
		Repo:     bookings,
		Payments: payments,
		Strict:   strict,
		Logger:   zap.NewNop(),
	}, bookings, payments
}

func createBooking(t *testing.T, svc *DefaultBookingService, email string) string {
	t.Helper()
	res, err := svc.CreateBooking(context.Background(), models.Booking{Email: email, ServiceID: "svc1", Price: 20})
	require.NoError(t, err)
	require.True(t, res.Acknowledged)
	return res.InsertedID
}

func TestCreateAndGetBooking(t *testing.T) {
	svc, _, _ := newTestService(false)
	id := createBooking(t, svc, "a@x.com")

	got, err := svc.GetBooking(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "svc1", got.ServiceID)
	assert.False(t, got.Paid)
}

func TestGetBookingsByOwner_SelfOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(false)
	createBooking(t, svc, "a@x.com")
	createBooking(t, svc, "b@x.com")

	got, err := svc.GetBookingsByOwner(ctx, "a@x.com", "a@x.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a@x.com", got[0].Email)

	mismatches := []struct{ email, caller string }{
		{"a@x.com", "b@x.com"},
		{"a@x.com", "A@x.com"},
		{"A@X.COM", "a@x.com"},
		{"a@x.com", "a@x.com "},
		{"", ""},
		{"", "a@x.com"},
	}
	for _, m := range mismatches {
		_, err := svc.GetBookingsByOwner(ctx, m.email, m.caller)
		assert.ErrorIs(t, err, utils.ErrForbidden, "%q vs %q", m.email, m.caller)
	}
}

func TestConfirmPayment_MarksBookingPaid(t *testing.T) {
	ctx := context.Background()
	svc, _, payments := newTestService(false)
	id := createBooking(t, svc, "a@x.com")

	updated, err := svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{Email: "a@x.com", Price: 20, TransactionID: "tx1"})
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	assert.Equal(t, "tx1", updated.TransactionID)

	got, err := svc.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Equal(t, "tx1", got.TransactionID)

	artifacts, err := payments.GetByBookingID(ctx, id)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "tx1", artifacts[0].TransactionID)
}

func TestConfirmPayment_ArtifactKeepsConfirmationBody(t *testing.T) {
	ctx := context.Background()
	svc, _, payments := newTestService(false)
	id := createBooking(t, svc, "a@x.com")

	_, err := svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{
		Email:         "a@x.com",
		Price:         20,
		TransactionID: "tx1",
		Extra: map[string]interface{}{
			"serviceName": "Binding",
			"cardBrand":   "visa",
			"bookingId":   "someone-else",
		},
	})
	require.NoError(t, err)

	artifacts, err := payments.GetByBookingID(ctx, id)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "Binding", artifacts[0].Extra["serviceName"])
	assert.Equal(t, "visa", artifacts[0].Extra["cardBrand"])
	assert.NotContains(t, artifacts[0].Extra, "bookingId")
	assert.Equal(t, id, artifacts[0].BookingID)
}

func TestConfirmPayment_RetryAppendsDuplicateArtifact(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(false)
	id := createBooking(t, svc, "a@x.com")
	payload := models.PaymentConfirmation{TransactionID: "tx1", Price: 20}

	_, err := svc.ConfirmPayment(ctx, id, payload)
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(ctx, id, payload)
	require.NoError(t, err)

	artifacts, err := svc.GetPayments(ctx, id)
	require.NoError(t, err)
	assert.Len(t, artifacts, 2)
}

func TestConfirmPayment_RejectsBadInputBeforeWriting(t *testing.T) {
	ctx := context.Background()
	svc, _, payments := newTestService(false)
	id := createBooking(t, svc, "a@x.com")

	_, err := svc.ConfirmPayment(ctx, "not-an-id", models.PaymentConfirmation{TransactionID: "tx1"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{TransactionID: "  "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	artifacts, err := payments.GetByBookingID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestConfirmPayment_UnknownBookingLeavesOrphanArtifact(t *testing.T) {
	ctx := context.Background()
	svc, _, payments := newTestService(false)
	missing := "0123456789abcdef01234567"

	_, err := svc.ConfirmPayment(ctx, missing, models.PaymentConfirmation{TransactionID: "tx1"})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	artifacts, err := payments.GetByBookingID(ctx, missing)
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)
}

type failingMarkPaid struct {
	*memory.BookingRepo
}

func (f failingMarkPaid) MarkPaid(context.Context, string, string, bool) (*models.Booking, error) {
	return nil, errors.Join(utils.ErrUpstream, errors.New("write concern timeout"))
}

func TestConfirmPayment_SecondWriteFailure(t *testing.T) {
	ctx := context.Background()
	svc, bookings, payments := newTestService(false)
	id := createBooking(t, svc, "a@x.com")
	svc.Repo = failingMarkPaid{bookings}

	_, err := svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{TransactionID: "tx1"})
	assert.ErrorIs(t, err, utils.ErrUpstream)

	got, err := bookings.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Paid)

	artifacts, err := payments.GetByBookingID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)
}

func TestConfirmPayment_ConcurrentLastWriterWins(t *testing.T) {
	ctx := context.Background()
	svc, _, payments := newTestService(false)
	id := createBooking(t, svc, "a@x.com")

	var wg sync.WaitGroup
	for _, tx := range []string{"tx-a", "tx-b"} {
		wg.Add(1)
		go func(tx string) {
			defer wg.Done()
			_, err := svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{TransactionID: tx})
			assert.NoError(t, err)
		}(tx)
	}
	wg.Wait()

	got, err := svc.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Contains(t, []string{"tx-a", "tx-b"}, got.TransactionID)

	artifacts, err := payments.GetByBookingID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, artifacts, 2)
}

func TestConfirmPayment_StrictRejectsRepeat(t *testing.T) {
	ctx := context.Background()
	svc, _, payments := newTestService(true)
	id := createBooking(t, svc, "a@x.com")

	_, err := svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{TransactionID: "tx1"})
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{TransactionID: "tx2"})
	assert.ErrorIs(t, err, utils.ErrConflict)

	got, err := svc.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "tx1", got.TransactionID)

	artifacts, err := payments.GetByBookingID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)
}

func TestConfirmPayment_StrictUnknownBookingWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, _, payments := newTestService(true)
	missing := "0123456789abcdef01234567"

	_, err := svc.ConfirmPayment(ctx, missing, models.PaymentConfirmation{TransactionID: "tx1"})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	artifacts, err := payments.GetByBookingID(ctx, missing)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestConfirmPayment_StrictConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(true)
	id := createBooking(t, svc, "a@x.com")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.ConfirmPayment(ctx, id, models.PaymentConfirmation{TransactionID: "tx"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, utils.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 7, conflicts)
}
