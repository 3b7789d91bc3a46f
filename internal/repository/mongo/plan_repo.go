package mongo

import (
	"alcyxob/weekly-plans/internal/repository"
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	weekCollectionName       = "weeks"
	dayCollectionName        = "days"
	completionCollectionName = "completions"
)

// mongoPlanRepository implements repository.Store over three collections.
type mongoPlanRepository struct {
	weeks       *mongo.Collection
	days        *mongo.Collection
	completions *mongo.Collection
}

// NewMongoPlanRepository creates a plan store backed by MongoDB.
func NewMongoPlanRepository(db *mongo.Database) repository.Store {
	return &mongoPlanRepository{
		weeks:       db.Collection(weekCollectionName),
		days:        db.Collection(dayCollectionName),
		completions: db.Collection(completionCollectionName),
	}
}

// classify maps driver errors onto the repository taxonomy. The driver error stays in the chain.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, repository.ErrInvalidArgument),
		errors.Is(err, repository.ErrUnreachable):
		return err
	default:
		return fmt.Errorf("%w: %w", repository.ErrUnreachable, err)
	}
}

// objectID parses an opaque id. Ids we never issued cannot exist in the store.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return oid, nil
}

// EnsurePlanIndexes creates necessary indexes. Call during startup.
func EnsurePlanIndexes(ctx context.Context, db *mongo.Database) {
	ensure := func(collection *mongo.Collection, indexes []mongo.IndexModel) {
		if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
			log.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
		}
	}

	ensure(db.Collection(weekCollectionName), []mongo.IndexModel{
		{
			// Main query pattern: a student's weeks, optionally only published ones
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "published", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index(),
		},
	})
	ensure(db.Collection(dayCollectionName), []mongo.IndexModel{
		{
			// Not unique: slot uniqueness is enforced by the assignment policy, last write wins
			Keys:    bson.D{{Key: "weekId", Value: 1}, {Key: "dayIndex", Value: 1}},
			Options: options.Index(),
		},
	})
	ensure(db.Collection(completionCollectionName), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "weekId", Value: 1}, {Key: "studentId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}
