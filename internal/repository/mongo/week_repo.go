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

// weekDocument is the stored shape of a TrainingWeek.
type weekDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StudentID string             `bson:"studentId"`
	TrainerID string             `bson:"trainerId"`
	StartDate time.Time          `bson:"startDate"`
	EndDate   time.Time          `bson:"endDate"`
	Published bool               `bson:"published"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func newWeekDocument(w *domain.TrainingWeek) weekDocument {
	return weekDocument{
		StudentID: w.StudentID,
		TrainerID: w.TrainerID,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		Published: w.Published,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (d weekDocument) toDomain() domain.TrainingWeek {
	return domain.TrainingWeek{
		ID:        d.ID.Hex(),
		StudentID: d.StudentID,
		TrainerID: d.TrainerID,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Published: d.Published,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ListWeeks retrieves a student's weeks. No ordering is applied.
func (r *mongoPlanRepository) ListWeeks(ctx context.Context, studentID string, onlyPublished bool) ([]domain.TrainingWeek, error) {
	filter := bson.M{"studentId": studentID}
	if onlyPublished {
		filter["published"] = true
	}

	cursor, err := r.weeks.Find(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	defer cursor.Close(ctx)

	var docs []weekDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, classify(err)
	}

	weeks := make([]domain.TrainingWeek, 0, len(docs))
	for _, d := range docs {
		weeks = append(weeks, d.toDomain())
	}
	return weeks, nil
}

// CreateWeek inserts a new week and sets its id and timestamps.
func (r *mongoPlanRepository) CreateWeek(ctx context.Context, week *domain.TrainingWeek) (string, error) {
	now := time.Now().UTC()
	week.CreatedAt = now
	week.UpdatedAt = now

	doc := newWeekDocument(week)
	doc.ID = primitive.NewObjectID()

	result, err := r.weeks.InsertOne(ctx, doc)
	if err != nil {
		return "", classify(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted week ID")
	}
	week.ID = insertedID.Hex()
	return week.ID, nil
}

// GetWeek retrieves a single week by its ID.
func (r *mongoPlanRepository) GetWeek(ctx context.Context, weekID string) (*domain.TrainingWeek, error) {
	oid, err := objectID(weekID)
	if err != nil {
		return nil, err
	}

	var doc weekDocument
	if err := r.weeks.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, classify(err)
	}
	week := doc.toDomain()
	return &week, nil
}

// UpdateWeek changes the date range and publish flag. Owner fields are never rewritten.
func (r *mongoPlanRepository) UpdateWeek(ctx context.Context, week *domain.TrainingWeek) error {
	oid, err := objectID(week.ID)
	if err != nil {
		return err
	}

	week.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"startDate": week.StartDate,
			"endDate":   week.EndDate,
			"published": week.Published,
			"updatedAt": week.UpdatedAt,
		},
	}

	result, err := r.weeks.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return classify(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
