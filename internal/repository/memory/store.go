// Package memory keeps plans in process memory. It backs the server in dev mode and the tests.
package memory

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/repository"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ repository.Store = (*Store)(nil)

type completionKey struct {
	weekID    string
	studentID string
}

// Store is a concurrency-safe in-memory plan store. Values are copied in and out.
type Store struct {
	mu          sync.RWMutex
	weeks       map[string]domain.TrainingWeek
	days        map[string]domain.TrainingDay
	completions map[completionKey]domain.CompletionMap
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		weeks:       make(map[string]domain.TrainingWeek),
		days:        make(map[string]domain.TrainingDay),
		completions: make(map[completionKey]domain.CompletionMap),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func copyDay(d domain.TrainingDay) domain.TrainingDay {
	if d.Blocks != nil {
		d.Blocks = append([]domain.Block(nil), d.Blocks...)
	}
	return d
}

func (s *Store) ListWeeks(_ context.Context, studentID string, onlyPublished bool) ([]domain.TrainingWeek, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weeks := []domain.TrainingWeek{}
	for _, w := range s.weeks {
		if w.StudentID != studentID {
			continue
		}
		if onlyPublished && !w.Published {
			continue
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}

func (s *Store) ListDays(_ context.Context, weekID string) ([]domain.TrainingDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := []domain.TrainingDay{}
	for _, d := range s.days {
		if d.WeekID == weekID {
			days = append(days, copyDay(d))
		}
	}
	return days, nil
}

func (s *Store) UpsertDay(_ context.Context, day domain.TrainingDay) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day.ID == "" {
		day.ID = uuid.NewString()
	} else if _, ok := s.days[day.ID]; !ok {
		return "", repository.ErrNotFound
	}
	day.UpdatedAt = s.now()
	s.days[day.ID] = copyDay(day)
	return day.ID, nil
}

func (s *Store) GetCompletionMap(_ context.Context, weekID, studentID string) (domain.CompletionMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completions[completionKey{weekID, studentID}].Clone(), nil
}

func (s *Store) SetCompletion(_ context.Context, weekID, studentID, dayID string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := completionKey{weekID, studentID}
	m, ok := s.completions[key]
	if !ok {
		m = domain.CompletionMap{}
		s.completions[key] = m
	}
	m[dayID] = completed
	return nil
}

func (s *Store) CreateWeek(_ context.Context, week *domain.TrainingWeek) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	week.ID = uuid.NewString()
	week.CreatedAt = now
	week.UpdatedAt = now
	s.weeks[week.ID] = *week
	return week.ID, nil
}

func (s *Store) GetWeek(_ context.Context, weekID string) (*domain.TrainingWeek, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.weeks[weekID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (s *Store) UpdateWeek(_ context.Context, week *domain.TrainingWeek) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.weeks[week.ID]
	if !ok {
		return repository.ErrNotFound
	}
	// owner and creation time are not editable
	existing.StartDate = week.StartDate
	existing.EndDate = week.EndDate
	existing.Published = week.Published
	existing.UpdatedAt = s.now()
	s.weeks[week.ID] = existing
	*week = existing
	return nil
}

func (s *Store) DeleteDay(_ context.Context, weekID, dayID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.days[dayID]
	if !ok || d.WeekID != weekID {
		return repository.ErrNotFound
	}
	delete(s.days, dayID)
	return nil
}
