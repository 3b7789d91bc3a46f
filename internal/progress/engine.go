// Package progress computes a student's check-ins for the week containing today.
package progress

import (
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/metrics"
	"alcyxob/weekly-plans/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// CheckIns is the (completed, total) counter shown in a profile summary.
type CheckIns struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Engine aggregates completion for the current week.
type Engine struct {
	repo    repository.PlanRepository
	clock   calendar.Clock
	cal     calendar.Calendar
	metrics *metrics.Manager
}

// NewEngine creates an Engine. m may be nil.
func NewEngine(repo repository.PlanRepository, clock calendar.Clock, cal calendar.Calendar, m *metrics.Manager) *Engine {
	if clock == nil {
		clock = calendar.SystemClock
	}
	return &Engine{
		repo:    repo,
		clock:   clock,
		cal:     cal,
		metrics: m,
	}
}

// WeekContaining returns the week whose [start, end] holds t at day granularity.
// Overlapping weeks resolve to the latest start, then the latest creation.
func WeekContaining(weeks []domain.TrainingWeek, cal calendar.Calendar, t time.Time) (domain.TrainingWeek, bool) {
	var (
		best  domain.TrainingWeek
		found bool
	)
	for _, w := range weeks {
		if !cal.Contains(w.StartDate, w.EndDate, t) {
			continue
		}
		if found {
			if w.StartDate.Before(best.StartDate) {
				continue
			}
			if w.StartDate.Equal(best.StartDate) && !w.CreatedAt.After(best.CreatedAt) {
				continue
			}
		}
		best, found = w, true
	}
	return best, found
}

// CurrentWeek returns the student's check-ins for the published week containing today.
// It never fails: any error yields a zero result, which is logged and counted.
func (e *Engine) CurrentWeek(ctx context.Context, studentID string) CheckIns {
	checkIns, err := e.currentWeek(ctx, studentID)
	if err != nil {
		log.WithFields(log.Fields{
			"student_id": studentID,
		}).Warnf("weekly progress degraded to zero: %v", err)
		if e.metrics != nil {
			e.metrics.CounterProgressDegraded.Inc()
		}
		return CheckIns{}
	}
	return checkIns
}

func (e *Engine) currentWeek(ctx context.Context, studentID string) (CheckIns, error) {
	if strings.TrimSpace(studentID) == "" {
		return CheckIns{}, fmt.Errorf("%w: studentId is required", repository.ErrInvalidArgument)
	}

	weeks, err := e.repo.ListWeeks(ctx, studentID, true)
	if err != nil {
		return CheckIns{}, fmt.Errorf("list weeks: %w", err)
	}
	week, ok := WeekContaining(weeks, e.cal, e.clock.Now())
	if !ok {
		return CheckIns{}, nil
	}

	days, err := e.repo.ListDays(ctx, week.ID)
	if err != nil {
		return CheckIns{}, fmt.Errorf("list days of week %s: %w", week.ID, err)
	}
	if len(days) == 0 {
		return CheckIns{}, nil
	}

	completion, err := e.repo.GetCompletionMap(ctx, week.ID, studentID)
	if err != nil {
		return CheckIns{}, fmt.Errorf("completion of week %s: %w", week.ID, err)
	}

	return CheckIns{
		Completed: completion.CountCompleted(days),
		Total:     len(days),
	}, nil
}
