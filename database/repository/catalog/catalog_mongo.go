package catalogRepo

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
)

var (
	_ ServiceRepository = (*MongoServiceRepo)(nil)
	_ BookRepository    = (*MongoBookRepo)(nil)
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo(db *mongo.Database) *MongoServiceRepo {
	return &MongoServiceRepo{coll: db.Collection(repository.ServicesCollection)}
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, repository.Upstream("find services", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, repository.Upstream("decode services", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: service %s", utils.ErrNotFound, id)
		}
		return nil, repository.Upstream("fetch service "+id, err)
	}
	return &service, nil
}

// MongoBookRepo implements BookRepository using MongoDB.
type MongoBookRepo struct {
	coll *mongo.Collection
}

// NewMongoBookRepo returns a BookRepository backed by MongoDB.
func NewMongoBookRepo(db *mongo.Database) *MongoBookRepo {
	return &MongoBookRepo{coll: db.Collection(repository.BooksCollection)}
}

func (r *MongoBookRepo) GetAll(ctx context.Context) ([]models.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, repository.Upstream("find books", err)
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, repository.Upstream("decode books", err)
	}
	return books, nil
}

func (r *MongoBookRepo) Create(ctx context.Context, book *models.Book) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := *book
	doc.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", repository.Upstream("insert book", err)
	}
	return repository.InsertedHex(res.InsertedID), nil
}

func (r *MongoBookRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, repository.Upstream("delete book of "+email, err)
	}
	return res.DeletedCount, nil
}
