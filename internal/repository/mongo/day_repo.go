package mongo

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dayDocument is the stored shape of a TrainingDay; blocks stay embedded.
type dayDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	WeekID      string             `bson:"weekId"`
	DayIndex    int                `bson:"dayIndex"`
	DayName     string             `bson:"dayName"`
	Date        time.Time          `bson:"date"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Blocks      []domain.Block     `bson:"blocks"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func newDayDocument(d domain.TrainingDay) dayDocument {
	blocks := d.Blocks
	if blocks == nil {
		blocks = []domain.Block{}
	}
	return dayDocument{
		WeekID:      d.WeekID,
		DayIndex:    d.DayIndex,
		DayName:     d.DayName,
		Date:        d.Date,
		Title:       d.Title,
		Description: d.Description,
		Blocks:      blocks,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d dayDocument) toDomain() domain.TrainingDay {
	return domain.TrainingDay{
		ID:          d.ID.Hex(),
		WeekID:      d.WeekID,
		DayIndex:    d.DayIndex,
		DayName:     d.DayName,
		Date:        d.Date,
		Title:       d.Title,
		Description: d.Description,
		Blocks:      d.Blocks,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ListDays retrieves every day of a week. Callers sort by dayIndex.
func (r *mongoPlanRepository) ListDays(ctx context.Context, weekID string) ([]domain.TrainingDay, error) {
	cursor, err := r.days.Find(ctx, bson.M{"weekId": weekID})
	if err != nil {
		return nil, classify(err)
	}
	defer cursor.Close(ctx)

	var docs []dayDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, classify(err)
	}

	days := make([]domain.TrainingDay, 0, len(docs))
	for _, d := range docs {
		days = append(days, d.toDomain())
	}
	return days, nil
}

// UpsertDay replaces the whole day document when day.ID is set, otherwise inserts a new one.
func (r *mongoPlanRepository) UpsertDay(ctx context.Context, day domain.TrainingDay) (string, error) {
	day.UpdatedAt = time.Now().UTC()
	doc := newDayDocument(day)

	if day.ID != "" {
		oid, err := objectID(day.ID)
		if err != nil {
			return "", err
		}
		doc.ID = oid
		result, err := r.days.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
		if err != nil {
			return "", classify(err)
		}
		if result.MatchedCount == 0 {
			return "", repository.ErrNotFound
		}
		return day.ID, nil
	}

	doc.ID = primitive.NewObjectID()
	result, err := r.days.InsertOne(ctx, doc)
	if err != nil {
		return "", classify(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted day ID")
	}
	return insertedID.Hex(), nil
}

// DeleteDay removes a day; the filter also checks it belongs to weekID.
func (r *mongoPlanRepository) DeleteDay(ctx context.Context, weekID, dayID string) error {
	oid, err := objectID(dayID)
	if err != nil {
		return err
	}

	result, err := r.days.DeleteOne(ctx, bson.M{"_id": oid, "weekId": weekID})
	if err != nil {
		return classify(err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
