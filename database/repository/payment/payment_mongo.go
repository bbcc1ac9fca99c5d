package paymentRepo

import (
	"context"
	"time"

	"bookhouse/database/repository"
	"bookhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ PaymentRepository = (*MongoPaymentRepo)(nil)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a PaymentRepository backed by MongoDB.
func NewMongoPaymentRepo(db *mongo.Database) *MongoPaymentRepo {
	return &MongoPaymentRepo{coll: db.Collection(repository.PaymentsCollection)}
}

// Create appends a payment artifact and returns its id. Retried calls append
// duplicates.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := *payment
	doc.ID = primitive.NilObjectID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", repository.Upstream("insert payment", err)
	}
	return repository.InsertedHex(res.InsertedID), nil
}

// GetByBookingID returns the artifacts recorded for a booking, oldest first.
func (r *MongoPaymentRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID}, opts)
	if err != nil {
		return nil, repository.Upstream("find payments", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, repository.Upstream("decode payments", err)
	}
	return payments, nil
}
