// Package database provides the MongoDB-backed implementation of the
// store package's Reader/Writer contract. The core decision-engine
// packages and the HTTP handlers never import this package directly;
// only main.go and cmd/backfillwinprobs construct a concrete
// *database.MongoStore and pass it on as store.Reader, store.Writer
// and (in main.go) store.AdminStore.
package database

import (
	"context"
	"fmt"
	"time"

	"nfl-survivor-go/logging"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds MongoDB connection parameters.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// MongoDB wraps a connected client and database handle.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoConnection dials MongoDB and verifies the connection with a
// ping before returning.
func NewMongoConnection(config Config) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var uri string
	if config.Username != "" && config.Password != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=%s",
			config.Username, config.Password, config.Host, config.Port, config.Database, config.Database)
		logging.Infof("connecting to MongoDB with authentication as user: %s", config.Username)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%s/%s", config.Host, config.Port, config.Database)
		logging.Info("connecting to MongoDB without authentication")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	database := client.Database(config.Database)
	logging.Infof("connected to MongoDB at %s:%s/%s", config.Host, config.Port, config.Database)

	return &MongoDB{client: client, database: database}, nil
}

// Close disconnects the underlying client.
func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// GetCollection returns a handle to a named collection.
func (m *MongoDB) GetCollection(name string) *mongo.Collection {
	return m.database.Collection(name)
}
