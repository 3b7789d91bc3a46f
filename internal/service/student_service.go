package service

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/progress"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/schedule"
	"context"
	"errors"
	"fmt"
)

// StudentService is the student side of the plans: reading published weeks and
// marking days done.
type StudentService interface {
	ListWeeks(ctx context.Context, caller domain.Identity) ([]domain.TrainingWeek, error)
	ListDays(ctx context.Context, caller domain.Identity, weekID string) ([]domain.TrainingDay, error)
	GetCompletion(ctx context.Context, caller domain.Identity, weekID string) (domain.CompletionMap, error)
	SetCompletion(ctx context.Context, caller domain.Identity, weekID, dayID string, completed bool) error
	CurrentProgress(ctx context.Context, caller domain.Identity) (progress.CheckIns, error)
}

type studentService struct {
	repo   repository.Store
	engine *progress.Engine
}

func NewStudentService(repo repository.Store, engine *progress.Engine) StudentService {
	return &studentService{repo: repo, engine: engine}
}

// visibleWeek loads a week the student may read: their own and published.
func (s *studentService) visibleWeek(ctx context.Context, caller domain.Identity, weekID string) (*domain.TrainingWeek, error) {
	if err := requireRole(caller, domain.RoleStudent); err != nil {
		return nil, err
	}
	if err := requireID("weekId", weekID); err != nil {
		return nil, err
	}
	week, err := getWeek(ctx, s.repo, weekID)
	if err != nil {
		return nil, err
	}
	if week.StudentID != caller.UserID || !week.Published {
		return nil, ErrWeekAccessDenied
	}
	return week, nil
}

func (s *studentService) ListWeeks(ctx context.Context, caller domain.Identity) (_ []domain.TrainingWeek, err error) {
	ctx, span := tracer.Start(ctx, "service.student.listWeeks")
	defer func() { endSpan(span, err) }()

	if err := requireRole(caller, domain.RoleStudent); err != nil {
		return nil, err
	}
	weeks, err := s.repo.ListWeeks(ctx, caller.UserID, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.TrainingWeek{}, nil
		}
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	schedule.SortWeeks(weeks)
	return weeks, nil
}

func (s *studentService) ListDays(ctx context.Context, caller domain.Identity, weekID string) (_ []domain.TrainingDay, err error) {
	ctx, span := tracer.Start(ctx, "service.student.listDays")
	defer func() { endSpan(span, err) }()

	if _, err := s.visibleWeek(ctx, caller, weekID); err != nil {
		if errors.Is(err, ErrWeekNotFound) {
			return []domain.TrainingDay{}, nil
		}
		return nil, err
	}
	days, err := s.repo.ListDays(ctx, weekID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.TrainingDay{}, nil
		}
		return nil, fmt.Errorf("list days: %w", err)
	}
	return schedule.SortDays(days), nil
}

func (s *studentService) GetCompletion(ctx context.Context, caller domain.Identity, weekID string) (_ domain.CompletionMap, err error) {
	ctx, span := tracer.Start(ctx, "service.student.getCompletion")
	defer func() { endSpan(span, err) }()

	if _, err := s.visibleWeek(ctx, caller, weekID); err != nil {
		if errors.Is(err, ErrWeekNotFound) {
			return domain.CompletionMap{}, nil
		}
		return nil, err
	}
	completion, err := s.repo.GetCompletionMap(ctx, weekID, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.CompletionMap{}, nil
		}
		return nil, fmt.Errorf("completion map: %w", err)
	}
	if completion == nil {
		completion = domain.CompletionMap{}
	}
	return completion, nil
}

// SetCompletion marks one day of the student's week. The day must belong to the week.
func (s *studentService) SetCompletion(ctx context.Context, caller domain.Identity, weekID, dayID string, completed bool) (err error) {
	ctx, span := tracer.Start(ctx, "service.student.setCompletion")
	defer func() { endSpan(span, err) }()

	if err := requireID("dayId", dayID); err != nil {
		return err
	}
	if _, err := s.visibleWeek(ctx, caller, weekID); err != nil {
		return err
	}

	days, err := s.repo.ListDays(ctx, weekID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("list days: %w", err)
	}
	found := false
	for _, d := range days {
		if d.ID == dayID {
			found = true
			break
		}
	}
	if !found {
		return ErrDayNotFound
	}

	if err := s.repo.SetCompletion(ctx, weekID, caller.UserID, dayID, completed); err != nil {
		return fmt.Errorf("set completion: %w", err)
	}
	return nil
}

// CurrentProgress never fails on store errors; those degrade to zero inside the engine.
func (s *studentService) CurrentProgress(ctx context.Context, caller domain.Identity) (_ progress.CheckIns, err error) {
	ctx, span := tracer.Start(ctx, "service.student.currentProgress")
	defer func() { endSpan(span, err) }()

	if err := requireRole(caller, domain.RoleStudent); err != nil {
		return progress.CheckIns{}, err
	}
	return s.engine.CurrentWeek(ctx, caller.UserID), nil
}
