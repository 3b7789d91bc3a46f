package repository

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/metrics"
	"context"
	"errors"
)

// instrumentedStore counts every call by operation and outcome.
type instrumentedStore struct {
	next    Store
	metrics *metrics.Manager
}

// Instrument wraps next so each call increments the store_calls counter.
func Instrument(next Store, m *metrics.Manager) Store {
	if m == nil {
		return next
	}
	return &instrumentedStore{next: next, metrics: m}
}

// Outcome buckets an error for metric labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUnreachable):
		return "unreachable"
	default:
		return "error"
	}
}

func (s *instrumentedStore) observe(op string, err error) {
	s.metrics.CounterStoreCalls.WithLabelValues(op, Outcome(err)).Inc()
}

func (s *instrumentedStore) ListWeeks(ctx context.Context, studentID string, onlyPublished bool) ([]domain.TrainingWeek, error) {
	weeks, err := s.next.ListWeeks(ctx, studentID, onlyPublished)
	s.observe("list_weeks", err)
	return weeks, err
}

func (s *instrumentedStore) ListDays(ctx context.Context, weekID string) ([]domain.TrainingDay, error) {
	days, err := s.next.ListDays(ctx, weekID)
	s.observe("list_days", err)
	return days, err
}

func (s *instrumentedStore) UpsertDay(ctx context.Context, day domain.TrainingDay) (string, error) {
	id, err := s.next.UpsertDay(ctx, day)
	s.observe("upsert_day", err)
	return id, err
}

func (s *instrumentedStore) GetCompletionMap(ctx context.Context, weekID, studentID string) (domain.CompletionMap, error) {
	m, err := s.next.GetCompletionMap(ctx, weekID, studentID)
	s.observe("get_completion", err)
	return m, err
}

func (s *instrumentedStore) SetCompletion(ctx context.Context, weekID, studentID, dayID string, completed bool) error {
	err := s.next.SetCompletion(ctx, weekID, studentID, dayID, completed)
	s.observe("set_completion", err)
	return err
}

func (s *instrumentedStore) CreateWeek(ctx context.Context, week *domain.TrainingWeek) (string, error) {
	id, err := s.next.CreateWeek(ctx, week)
	s.observe("create_week", err)
	return id, err
}

func (s *instrumentedStore) GetWeek(ctx context.Context, weekID string) (*domain.TrainingWeek, error) {
	w, err := s.next.GetWeek(ctx, weekID)
	s.observe("get_week", err)
	return w, err
}

func (s *instrumentedStore) UpdateWeek(ctx context.Context, week *domain.TrainingWeek) error {
	err := s.next.UpdateWeek(ctx, week)
	s.observe("update_week", err)
	return err
}

func (s *instrumentedStore) DeleteDay(ctx context.Context, weekID, dayID string) error {
	err := s.next.DeleteDay(ctx, weekID, dayID)
	s.observe("delete_day", err)
	return err
}
