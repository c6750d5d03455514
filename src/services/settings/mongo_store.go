package settings

import (
	"context"
	"fmt"
	"time"

	"SSAAM-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// MongoStore keeps the settings under a fixed _id so that concurrent first
// reads upsert the same document instead of racing to insert two.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (s *MongoStore) GetOrCreate(ctx context.Context) (*models.Settings, error) {
	return s.Update(ctx, nil, nil)
}

func (s *MongoStore) Update(ctx context.Context, register *models.RegisterSetting, login *models.LoginSetting) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	defaults := models.DefaultSettings()
	set := bson.M{}
	onInsert := bson.M{}

	if register != nil {
		set["userRegister"] = *register
	} else {
		onInsert["userRegister"] = defaults.UserRegister
	}
	if login != nil {
		set["userLogin"] = *login
	} else {
		onInsert["userLogin"] = defaults.UserLogin
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}

	var out models.Settings
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": models.SettingsID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return &out, nil
}
