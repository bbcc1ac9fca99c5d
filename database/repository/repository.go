// Package repository holds helpers shared by the store implementations.
package repository

import (
	"fmt"

	"bookhouse/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names inside the portal database.
const (
	ServicesCollection = "services"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
	BooksCollection    = "books"
	PaymentsCollection = "payments"
)

// ParseID converts a hex document id, rejecting malformed input with
// utils.ErrInvalidInput.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", utils.ErrInvalidInput, id)
	}
	return oid, nil
}

// Upstream tags a driver error so handlers answer 500.
func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", utils.ErrUpstream, op, err)
}

// InsertedHex renders the id returned by InsertOne.
func InsertedHex(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
