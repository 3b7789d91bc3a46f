package screen

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/schedule"
	"context"
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when an action needs loaded data the screen does not have.
var ErrNotLoaded = errors.New("screen data is not loaded")

// DayBoard is what a day list shows: days in slot order and the student's statuses.
type DayBoard struct {
	Days       []domain.TrainingDay
	Completion domain.CompletionMap
}

// Completed reports whether the day is marked done.
func (b DayBoard) Completed(dayID string) bool {
	return b.Completion[dayID]
}

// DayList is the day list of one week. With an empty studentID (trainer view) no
// completion statuses are loaded and Toggle is unavailable.
type DayList struct {
	*Loader[DayBoard]
	repo      repository.PlanRepository
	weekID    string
	studentID string
}

// NewDayList creates the screen; nothing is fetched until Enter.
func NewDayList(repo repository.PlanRepository, weekID, studentID string, onChange func(Snapshot[DayBoard])) *DayList {
	s := &DayList{repo: repo, weekID: weekID, studentID: studentID}
	s.Loader = NewLoader(s.fetch, onChange)
	return s
}

func (s *DayList) fetch(ctx context.Context) (DayBoard, error) {
	days, err := s.repo.ListDays(ctx, s.weekID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DayBoard{Days: []domain.TrainingDay{}, Completion: domain.CompletionMap{}}, nil
		}
		return DayBoard{}, fmt.Errorf("list days: %w", err)
	}
	board := DayBoard{Days: schedule.SortDays(days), Completion: domain.CompletionMap{}}
	if s.studentID == "" {
		return board, nil
	}

	completion, err := s.repo.GetCompletionMap(ctx, s.weekID, s.studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return board, nil
		}
		return DayBoard{}, fmt.Errorf("completion map: %w", err)
	}
	board.Completion = completion.Clone()
	return board, nil
}

// Toggle marks a day locally first, then records it in the store. A store failure is
// returned as is; the local mark stays until the next load replaces it.
func (s *DayList) Toggle(ctx context.Context, dayID string, completed bool) error {
	if s.studentID == "" || dayID == "" {
		return fmt.Errorf("%w: studentId and dayId are required", repository.ErrInvalidArgument)
	}
	applied := s.Mutate(func(b *DayBoard) {
		next := b.Completion.Clone()
		next[dayID] = completed
		b.Completion = next
	})
	if !applied {
		return ErrNotLoaded
	}
	if err := s.repo.SetCompletion(ctx, s.weekID, s.studentID, dayID, completed); err != nil {
		return fmt.Errorf("set completion: %w", err)
	}
	return nil
}
