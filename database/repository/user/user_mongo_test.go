package userRepo

import (
	"context"
	"testing"

	"bookhouse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get by email decodes inline profile", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "bob@x.com"},
			{Key: "role", Value: "admin"},
			{Key: "name", Value: "Bob"},
		}))

		u, err := repo.GetByEmail(ctx, "bob@x.com")
		require.NoError(mt, err)
		assert.True(mt, u.IsAdmin())
		assert.Equal(mt, "Bob", u.Profile["name"])
	})

	mt.Run("get by email maps missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByEmail(ctx, "ghost@x.com")
		assert.ErrorIs(mt, err, utils.ErrNotFound)
	})

	mt.Run("upsert reports inserted document", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: oid}}}},
		))

		res, err := repo.UpsertProfile(ctx, "bob@x.com", map[string]interface{}{"name": "Bob"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.UpsertedCount)
		assert.Equal(mt, int64(0), res.MatchedCount)
		assert.Equal(mt, oid.Hex(), res.UpsertedID)
	})

	mt.Run("set role on existing user", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.SetRole(ctx, "bob@x.com", "admin")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
	})

	mt.Run("get all", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@x.com"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "b@x.com"}},
		))

		users, err := repo.GetAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "b@x.com", users[1].Email)
	})
}
