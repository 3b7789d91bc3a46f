package repository

import (
	"alcyxob/weekly-plans/internal/domain"
	"context"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/repository_mock.go -package=mocks

// Error constants for the repository layer
var (
	ErrNotFound        = RepositoryError("not found")
	ErrInvalidArgument = RepositoryError("invalid argument")
	ErrUnreachable     = RepositoryError("store unreachable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PlanRepository is what the scheduling, aggregation and screen logic read and write through.
// Lists are returned in no particular order.
type PlanRepository interface {
	// ListWeeks returns the student's weeks, only the published ones when onlyPublished is set.
	ListWeeks(ctx context.Context, studentID string, onlyPublished bool) ([]domain.TrainingWeek, error)
	// ListDays returns every day of the week. Callers sort by DayIndex.
	ListDays(ctx context.Context, weekID string) ([]domain.TrainingDay, error)
	// UpsertDay replaces the day with day.ID, or creates a new one when day.ID is empty.
	// It returns the day's id.
	UpsertDay(ctx context.Context, day domain.TrainingDay) (string, error)
	// GetCompletionMap returns the recorded statuses for the pair, empty when none exist.
	GetCompletionMap(ctx context.Context, weekID, studentID string) (domain.CompletionMap, error)
	// SetCompletion records one day's status. Repeating the call is harmless.
	SetCompletion(ctx context.Context, weekID, studentID, dayID string, completed bool) error
}

// WeekRepository manages weeks themselves and day removal.
type WeekRepository interface {
	CreateWeek(ctx context.Context, week *domain.TrainingWeek) (string, error)
	GetWeek(ctx context.Context, weekID string) (*domain.TrainingWeek, error)
	UpdateWeek(ctx context.Context, week *domain.TrainingWeek) error
	DeleteDay(ctx context.Context, weekID, dayID string) error
}

// Store is a full plan store.
type Store interface {
	PlanRepository
	WeekRepository
}
