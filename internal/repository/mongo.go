package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionStudents       = "students"
	CollectionTasks          = "tasks"
	CollectionNotes          = "notes"
	CollectionCommunications = "communications"
	CollectionInteractions   = "interactions"
	CollectionUsers          = "users"
	CollectionConfig         = "config"
)

// EnsureIndexes creates the indexes behind the directory search and the per-student lists.
// Creating an index that already exists is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollectionStudents: {
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "lastActive", Value: 1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "country", Value: 1}, {Key: "applicationStatus", Value: 1}}},
			{Keys: bson.D{{Key: "tags", Value: 1}}},
			{Keys: bson.D{{Key: "studentId", Value: 1}}, Options: options.Index().SetSparse(true)},
		},
		CollectionTasks:          {{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "createdAt", Value: -1}}}},
		CollectionNotes:          {{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "createdAt", Value: -1}}}},
		CollectionCommunications: {{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "timestamp", Value: -1}}}},
		CollectionInteractions:   {{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "timestamp", Value: -1}}}},
		CollectionUsers:          {{Keys: bson.D{{Key: "email", Value: 1}}}},
	}

	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// newestFirst lists documents for an optional student, newest first by field.
func newestFirst[T any](ctx context.Context, coll *mongo.Collection, studentID, field string) ([]T, error) {
	filter := bson.D{}
	if studentID != "" {
		filter = append(filter, bson.E{Key: "studentId", Value: studentID})
	}
	opts := options.Find().SetSort(bson.D{{Key: field, Value: -1}, {Key: "_id", Value: -1}})

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetCollections deletes every document from the student directory and its satellites. Users
// and the global config survive.
func ResetCollections(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{CollectionStudents, CollectionTasks, CollectionNotes, CollectionCommunications, CollectionInteractions} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}
