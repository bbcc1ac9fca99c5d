package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed card payment. Extra holds
// the rest of the confirmation body.
type Payment struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	BookingID     string                 `bson:"bookingId" json:"bookingId"`
	Email         string                 `bson:"email,omitempty" json:"email,omitempty"`
	Price         float64                `bson:"price" json:"price"`
	TransactionID string                 `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time              `bson:"createdAt" json:"createdAt"`
	Extra         map[string]interface{} `bson:",inline" json:"-"`
}

type paymentFields Payment

var paymentKeys = fieldNames(paymentFields{})

func (p Payment) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(paymentFields(p), p.Extra)
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	var known paymentFields
	extra, err := decodeWithExtra(data, &known, paymentKeys)
	if err != nil {
		return err
	}
	*p = Payment(known)
	p.Extra = extra
	return nil
}

// NewPayment builds the artifact for a confirmation of bookingID. Body keys
// that name artifact fields, such as bookingId or createdAt, are not copied.
func NewPayment(bookingID string, c PaymentConfirmation, at time.Time) *Payment {
	return &Payment{
		BookingID:     bookingID,
		Email:         c.Email,
		Price:         c.Price,
		TransactionID: c.TransactionID,
		CreatedAt:     at,
		Extra:         withoutKeys(c.Extra, paymentKeys),
	}
}

// PaymentConfirmation is the client payload of PATCH /booking/:id.
type PaymentConfirmation struct {
	Email         string                 `json:"email"`
	Price         float64                `json:"price"`
	TransactionID string                 `json:"transactionId" binding:"required"`
	Extra         map[string]interface{} `json:"-"`
}

type confirmationFields PaymentConfirmation

var confirmationKeys = fieldNames(confirmationFields{})

func (c *PaymentConfirmation) UnmarshalJSON(data []byte) error {
	var known confirmationFields
	extra, err := decodeWithExtra(data, &known, confirmationKeys)
	if err != nil {
		return err
	}
	*c = PaymentConfirmation(known)
	c.Extra = extra
	return nil
}

func (c PaymentConfirmation) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(confirmationFields(c), c.Extra)
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}
