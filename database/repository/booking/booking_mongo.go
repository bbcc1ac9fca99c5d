package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookhouse/database/repository"
	"bookhouse/models"
	"bookhouse/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(repository.BookingsCollection)}
}

// Create inserts a new booking document. Payment fields are reset so a client
// cannot submit a booking that is already paid.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := *booking
	doc.ID = primitive.NilObjectID
	doc.Paid = false
	doc.TransactionID = ""

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", repository.Upstream("insert booking", err)
	}
	return repository.InsertedHex(res.InsertedID), nil
}

// GetByID retrieves a booking by its hex id.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: booking %s", utils.ErrNotFound, id)
		}
		return nil, repository.Upstream("fetch booking "+id, err)
	}
	return &booking, nil
}

// GetByEmail retrieves all bookings owned by email. The match is exact.
func (r *MongoBookingRepo) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, repository.Upstream("find bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, repository.Upstream("decode bookings", err)
	}
	return bookings, nil
}

// MarkPaid applies the paid transition in a single document update.
func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id, transactionID string, onlyUnpaid bool) (*models.Booking, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": oid}
	if onlyUnpaid {
		filter["paid"] = bson.M{"$ne": true}
	}
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: booking %s", utils.ErrNotFound, id)
		}
		return nil, repository.Upstream("mark booking "+id+" paid", err)
	}
	return &booking, nil
}
