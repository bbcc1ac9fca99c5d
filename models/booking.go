package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a reservation of a service by its owner. Paid and TransactionID
// are only written by the payment confirmation flow. Fields the client sends
// beyond the modeled ones are kept in Extra and stored inline.
type Booking struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Email         string                 `bson:"email" json:"email"`
	ServiceID     string                 `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName   string                 `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Price         float64                `bson:"price" json:"price"`
	Date          string                 `bson:"date,omitempty" json:"date,omitempty"`
	Slot          string                 `bson:"slot,omitempty" json:"slot,omitempty"`
	Phone         string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid          bool                   `bson:"paid" json:"paid"`
	TransactionID string                 `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Extra         map[string]interface{} `bson:",inline" json:"-"`
}

type bookingFields Booking

var bookingKeys = fieldNames(bookingFields{})

func (b Booking) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(bookingFields(b), b.Extra)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var known bookingFields
	extra, err := decodeWithExtra(data, &known, bookingKeys)
	if err != nil {
		return err
	}
	*b = Booking(known)
	b.Extra = extra
	return nil
}

// InsertResult mirrors the store acknowledgement of a created document.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}
