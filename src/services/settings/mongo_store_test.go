package settings

import (
	"context"
	"testing"

	"SSAAM-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func settingsDoc(register, login bool) bson.D {
	return bson.D{
		{Key: "_id", Value: models.SettingsID},
		{Key: "userRegister", Value: bson.D{{Key: "register", Value: register}, {Key: "message", Value: ""}}},
		{Key: "userLogin", Value: bson.D{{Key: "login", Value: login}, {Key: "message", Value: ""}}},
	}
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("FirstReadUpsertsDefaults", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: settingsDoc(true, true)}))
		got, err := NewMongoStore(mt.Coll).GetOrCreate(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, models.DefaultSettings(), *got)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		upsert, ok := evt.Command.Lookup("upsert").BooleanOK()
		require.True(mt, ok)
		assert.True(mt, upsert)

		id, err := evt.Command.LookupErr("query", "_id")
		require.NoError(mt, err)
		assert.Equal(mt, models.SettingsID, id.StringValue())

		register, err := evt.Command.LookupErr("update", "$setOnInsert", "userRegister", "register")
		require.NoError(mt, err)
		assert.True(mt, register.Boolean())

		_, err = evt.Command.LookupErr("update", "$set")
		assert.Error(mt, err)
	})

	mt.Run("UpdateSetsOnlyGivenSection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: settingsDoc(false, true)}))
		got, err := NewMongoStore(mt.Coll).Update(ctx, &models.RegisterSetting{Register: false, Message: "closed"}, nil)
		require.NoError(mt, err)
		assert.False(mt, got.UserRegister.Register)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		message, err := evt.Command.LookupErr("update", "$set", "userRegister", "message")
		require.NoError(mt, err)
		assert.Equal(mt, "closed", message.StringValue())

		_, err = evt.Command.LookupErr("update", "$setOnInsert", "userLogin")
		assert.NoError(mt, err)
		_, err = evt.Command.LookupErr("update", "$setOnInsert", "userRegister")
		assert.Error(mt, err)
	})

	mt.Run("ServerError", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    8000,
			Name:    "AtlasError",
			Message: "quota exceeded",
		}))
		_, err := NewMongoStore(mt.Coll).GetOrCreate(ctx)
		assert.ErrorContains(mt, err, "upsert settings")
	})
}
