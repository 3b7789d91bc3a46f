package mongo

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// completionDocument holds one student's statuses for one week, keyed by day id.
type completionDocument struct {
	WeekID    string          `bson:"weekId"`
	StudentID string          `bson:"studentId"`
	Days      map[string]bool `bson:"days"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}

// GetCompletionMap returns the statuses for the pair; no document means nothing is marked.
func (r *mongoPlanRepository) GetCompletionMap(ctx context.Context, weekID, studentID string) (domain.CompletionMap, error) {
	var doc completionDocument
	err := r.completions.FindOne(ctx, bson.M{"weekId": weekID, "studentId": studentID}).Decode(&doc)
	if err != nil {
		err = classify(err)
		if errors.Is(err, repository.ErrNotFound) {
			return domain.CompletionMap{}, nil
		}
		return nil, err
	}
	return domain.CompletionMap(doc.Days).Clone(), nil
}

// SetCompletion sets a single day's status, creating the pair's document on first use.
func (r *mongoPlanRepository) SetCompletion(ctx context.Context, weekID, studentID, dayID string, completed bool) error {
	// day ids become part of a field path, so only ids this store issued are accepted
	if _, err := objectID(dayID); err != nil {
		return fmt.Errorf("%w: malformed dayId %q", repository.ErrInvalidArgument, dayID)
	}

	filter := bson.M{"weekId": weekID, "studentId": studentID}
	update := bson.M{
		"$set": bson.M{
			"days." + dayID: completed,
			"updatedAt":     time.Now().UTC(),
		},
	}
	_, err := r.completions.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return classify(err)
}
