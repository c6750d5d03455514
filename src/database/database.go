package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	serverSelectionTimeout = 5 * time.Second

	StudentsCollectionName = "students"
	MastersCollectionName  = "masters"
	SettingsCollectionName = "settings"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	StudentCollection  *mongo.Collection
	MasterCollection   *mongo.Collection
	SettingsCollection *mongo.Collection
)

// ConnectMongoDB connects once and binds the roster collections of dbName.
func ConnectMongoDB(ctx context.Context, uri, dbName string) error {
	if uri == "" {
		return errors.New("MONGO_URI environment variable not set")
	}

	once.Do(func() {
		opts := options.Client().
			ApplyURI(uri).
			SetServerSelectionTimeout(serverSelectionTimeout)

		client, connectErr = mongo.Connect(ctx, opts)
		if connectErr != nil {
			connectErr = fmt.Errorf("connect mongodb: %w", connectErr)
			return
		}

		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			connectErr = fmt.Errorf("ping mongodb: %w", connectErr)
			return
		}

		db := client.Database(dbName)
		StudentCollection = db.Collection(StudentsCollectionName)
		MasterCollection = db.Collection(MastersCollectionName)
		SettingsCollection = db.Collection(SettingsCollectionName)
	})

	return connectErr
}

// EnsureIndexes creates the unique keys the roster relies on. student_id and
// username uniqueness is enforced here, not in application code.
func EnsureIndexes(ctx context.Context) error {
	if client == nil {
		return errors.New("mongodb client is nil")
	}

	_, err := StudentCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "student_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_date", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create student indexes: %w", err)
	}

	_, err = MasterCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create master indexes: %w", err)
	}
	return nil
}

// Ping reports whether the primary is reachable.
func Ping(ctx context.Context) error {
	if client == nil {
		return errors.New("mongodb client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the shared client.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
