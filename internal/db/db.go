package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the single collection this service reads and writes.
const CollectionName = "transactions"

// Connect creates the shared Mongo client. The driver connects lazily,
// so a successful return does not prove the store is reachable; call
// Ping for that.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("creating mongo client: %w", err)
	}
	return client, nil
}

// Ping checks reachability of the store with a short deadline.
func Ping(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

// Transactions returns the handle to the transactions collection in the
// named database.
func Transactions(client *mongo.Client, database string) *mongo.Collection {
	return client.Database(database).Collection(CollectionName)
}
