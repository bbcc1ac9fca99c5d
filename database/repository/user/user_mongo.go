package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookhouse/database/repository"
	"bookhouse/models"
	"bookhouse/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{coll: db.Collection(repository.UsersCollection)}
}

// EnsureIndexes creates the unique email index the upsert relies on.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, email)
		}
		return nil, repository.Upstream("fetch user "+email, err)
	}
	return &user, nil
}

// GetAll retrieves all users.
func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, repository.Upstream("find users", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, repository.Upstream("decode user", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, repository.Upstream("iterate users", err)
	}
	return users, nil
}

// UpsertProfile wraps fields in $set and upserts on email.
func (r *MongoUserRepo) UpsertProfile(ctx context.Context, email string, fields map[string]interface{}) (*models.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["email"] = email

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, repository.Upstream("upsert user "+email, err)
	}
	return toUpdateResult(res), nil
}

// SetRole updates the role of the user with the given email.
func (r *MongoUserRepo) SetRole(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, repository.Upstream("set role for "+email, err)
	}
	return toUpdateResult(res), nil
}

func toUpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	out := &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = repository.InsertedHex(res.UpsertedID)
	}
	return out
}
