package masters

import (
	"context"
	"testing"

	"SSAAM-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := func(mt *mtest.T) string {
		return mt.DB.Name() + "." + mt.Coll.Name()
	}

	mt.Run("CreateDuplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Code:    11000,
			Message: "E11000 duplicate key error collection: masters index: username_1",
		}))
		err := NewMongoStore(mt.Coll).Create(ctx, &models.Master{Username: "admin", Password: "hash"})
		assert.ErrorIs(mt, err, ErrUsernameTaken)
	})

	mt.Run("FindMissing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))
		_, err := NewMongoStore(mt.Coll).FindByUsername(ctx, "ghost")
		assert.ErrorIs(mt, err, ErrMasterNotFound)
	})

	mt.Run("FindExisting", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "username", Value: "admin"}, {Key: "password", Value: "hash"}},
		))
		master, err := NewMongoStore(mt.Coll).FindByUsername(ctx, "admin")
		require.NoError(mt, err)
		assert.Equal(mt, "hash", master.Password)
	})

	mt.Run("ListEmpty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))
		list, err := NewMongoStore(mt.Coll).List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, list)
		assert.Empty(mt, list)
	})
}
