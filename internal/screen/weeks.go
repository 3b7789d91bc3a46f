package screen

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/schedule"
	"context"
	"errors"
	"fmt"
)

// WeekList lists a student's weeks, newest start first. Students see published weeks only.
type WeekList struct {
	*Loader[[]domain.TrainingWeek]
	repo          repository.PlanRepository
	studentID     string
	onlyPublished bool
}

// NewWeekList creates the screen for the viewer. Trainers see drafts too.
func NewWeekList(repo repository.PlanRepository, viewer domain.Identity, studentID string, onChange func(Snapshot[[]domain.TrainingWeek])) *WeekList {
	s := &WeekList{repo: repo, studentID: studentID, onlyPublished: !viewer.IsTrainer()}
	s.Loader = NewLoader(s.fetch, onChange)
	return s
}

func (s *WeekList) fetch(ctx context.Context) ([]domain.TrainingWeek, error) {
	weeks, err := s.repo.ListWeeks(ctx, s.studentID, s.onlyPublished)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.TrainingWeek{}, nil
		}
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	schedule.SortWeeks(weeks)
	return weeks, nil
}
