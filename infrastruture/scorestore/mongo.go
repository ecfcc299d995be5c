package scorestore

import (
	"context"
	"errors"
	"time"

	"github.com/darthkolli145/Mazegame/scoreboard"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore handles the persistence of score records in a MongoDB
// collection.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new MongoStore with the given MongoDB client,
// database name, and collection name.
func NewMongoStore(client *mongo.Client, dbName, collectionName string) *MongoStore {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoStore{
		collection: collection,
	}
}

// Record inserts the score of one completed run.
func (m *MongoStore) Record(ctx context.Context, rec scoreboard.Record) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := m.collection.InsertOne(ctx, rec); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// TopScores retrieves up to n best scores for a difficulty, best first.
func (m *MongoStore) TopScores(ctx context.Context, difficulty string, n int) ([]scoreboard.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}}).
		SetLimit(int64(n))

	cursor, err := m.collection.Find(ctx, bson.M{"difficulty": difficulty}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []scoreboard.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
