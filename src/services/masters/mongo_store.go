package masters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SSAAM-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 5 * time.Second

type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (s *MongoStore) Create(ctx context.Context, master *models.Master) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.col.InsertOne(ctx, master)
	if mongo.IsDuplicateKeyError(err) {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("insert master: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByUsername(ctx context.Context, username string) (*models.Master, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var master models.Master
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&master)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find master %s: %w", username, err)
	}
	return &master, nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.Master, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find masters: %w", err)
	}
	defer cursor.Close(ctx)

	masters := make([]models.Master, 0)
	if err := cursor.All(ctx, &masters); err != nil {
		return nil, fmt.Errorf("decode masters: %w", err)
	}
	return masters, nil
}
