package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"finboard/internal/models"
)

// MongoStore implements TransactionStore over a single shared
// collection handle, established once at process start.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) List(ctx context.Context) ([]models.Transaction, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("finding transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txns []models.Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w", err)
	}
	return txns, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id int64) (models.Transaction, error) {
	var txn models.Transaction
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&txn)
	if err == mongo.ErrNoDocuments {
		return models.Transaction{}, ErrNotFound
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("finding transaction %d: %w", id, err)
	}
	return txn, nil
}

func (s *MongoStore) UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) (models.Transaction, error) {
	delete(fields, "id")

	// An empty $set document is rejected by the server; with nothing to
	// change, the current document is the result.
	if len(fields) > 0 {
		result, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
		if err != nil {
			return models.Transaction{}, fmt.Errorf("updating transaction %d: %w", id, err)
		}
		if result.MatchedCount == 0 {
			return models.Transaction{}, ErrNotFound
		}
	}

	return s.GetByID(ctx, id)
}

func (s *MongoStore) DeleteByID(ctx context.Context, id int64) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Distinct(ctx context.Context, field string) ([]string, error) {
	raw, err := s.coll.Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			values = append(values, str)
		}
	}
	sort.Strings(values)
	return values, nil
}
