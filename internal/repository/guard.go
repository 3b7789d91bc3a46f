package repository

import (
	"alcyxob/weekly-plans/internal/domain"
	"context"
	"fmt"
	"strings"
)

// guardedStore rejects calls missing a required identifier before they reach the store.
type guardedStore struct {
	next Store
}

// Guard wraps a Store with argument checks. Failing calls return ErrInvalidArgument
// without touching next.
func Guard(next Store) Store {
	return &guardedStore{next: next}
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
	}
	return nil
}

func (g *guardedStore) ListWeeks(ctx context.Context, studentID string, onlyPublished bool) ([]domain.TrainingWeek, error) {
	if err := requireID("studentId", studentID); err != nil {
		return nil, err
	}
	return g.next.ListWeeks(ctx, studentID, onlyPublished)
}

func (g *guardedStore) ListDays(ctx context.Context, weekID string) ([]domain.TrainingDay, error) {
	if err := requireID("weekId", weekID); err != nil {
		return nil, err
	}
	return g.next.ListDays(ctx, weekID)
}

func (g *guardedStore) UpsertDay(ctx context.Context, day domain.TrainingDay) (string, error) {
	if err := requireID("weekId", day.WeekID); err != nil {
		return "", err
	}
	if !domain.ValidDayIndex(day.DayIndex) {
		return "", fmt.Errorf("%w: dayIndex %d outside %d..%d", ErrInvalidArgument, day.DayIndex, domain.FirstDayIndex, domain.LastDayIndex)
	}
	return g.next.UpsertDay(ctx, day)
}

func (g *guardedStore) GetCompletionMap(ctx context.Context, weekID, studentID string) (domain.CompletionMap, error) {
	if err := requireID("weekId", weekID); err != nil {
		return nil, err
	}
	if err := requireID("studentId", studentID); err != nil {
		return nil, err
	}
	return g.next.GetCompletionMap(ctx, weekID, studentID)
}

func (g *guardedStore) SetCompletion(ctx context.Context, weekID, studentID, dayID string, completed bool) error {
	if err := requireID("weekId", weekID); err != nil {
		return err
	}
	if err := requireID("studentId", studentID); err != nil {
		return err
	}
	if err := requireID("dayId", dayID); err != nil {
		return err
	}
	return g.next.SetCompletion(ctx, weekID, studentID, dayID, completed)
}

func (g *guardedStore) CreateWeek(ctx context.Context, week *domain.TrainingWeek) (string, error) {
	if week == nil {
		return "", fmt.Errorf("%w: week is required", ErrInvalidArgument)
	}
	if err := requireID("studentId", week.StudentID); err != nil {
		return "", err
	}
	return g.next.CreateWeek(ctx, week)
}

func (g *guardedStore) GetWeek(ctx context.Context, weekID string) (*domain.TrainingWeek, error) {
	if err := requireID("weekId", weekID); err != nil {
		return nil, err
	}
	return g.next.GetWeek(ctx, weekID)
}

func (g *guardedStore) UpdateWeek(ctx context.Context, week *domain.TrainingWeek) error {
	if week == nil {
		return fmt.Errorf("%w: week is required", ErrInvalidArgument)
	}
	if err := requireID("weekId", week.ID); err != nil {
		return err
	}
	return g.next.UpdateWeek(ctx, week)
}

func (g *guardedStore) DeleteDay(ctx context.Context, weekID, dayID string) error {
	if err := requireID("weekId", weekID); err != nil {
		return err
	}
	if err := requireID("dayId", dayID); err != nil {
		return err
	}
	return g.next.DeleteDay(ctx, weekID, dayID)
}
