package progress

import (
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/metrics"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/repository/memory"
	"alcyxob/weekly-plans/internal/repository/mocks"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	today     = time.Date(2024, 5, 8, 15, 30, 0, 0, time.UTC)
	weekStart = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	weekEnd   = time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
)

func newTestEngine(repo repository.PlanRepository, m *metrics.Manager) *Engine {
	return NewEngine(repo, calendar.Fixed(today), calendar.New(time.UTC), m)
}

func TestCurrentWeek_IgnoresStaleCompletionEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlanRepository(ctrl)

	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).
		Return([]domain.TrainingWeek{{ID: "w1", StartDate: weekStart, EndDate: weekEnd, Published: true}}, nil)
	repo.EXPECT().ListDays(gomock.Any(), "w1").
		Return([]domain.TrainingDay{{ID: "d1"}, {ID: "d3"}}, nil)
	repo.EXPECT().GetCompletionMap(gomock.Any(), "w1", "s1").
		Return(domain.CompletionMap{"d1": true, "d2": false}, nil)

	got := newTestEngine(repo, nil).CurrentWeek(context.Background(), "s1")
	assert.Equal(t, CheckIns{Completed: 1, Total: 2}, got)
}

func TestCurrentWeek_NoContainingWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlanRepository(ctrl)

	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).
		Return([]domain.TrainingWeek{
			{ID: "past", StartDate: weekStart.AddDate(0, 0, -14), EndDate: weekStart.AddDate(0, 0, -8)},
			{ID: "next", StartDate: weekEnd.AddDate(0, 0, 1), EndDate: weekEnd.AddDate(0, 0, 7)},
		}, nil)

	assert.Equal(t, CheckIns{}, newTestEngine(repo, nil).CurrentWeek(context.Background(), "s1"))
}

func TestCurrentWeek_UnreachableDegradesToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlanRepository(ctrl)
	m := metrics.NewTestManager()

	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).
		Return(nil, fmt.Errorf("%w: connection refused", repository.ErrUnreachable))

	got := newTestEngine(repo, m).CurrentWeek(context.Background(), "s1")
	assert.Equal(t, CheckIns{}, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterProgressDegraded))
}

func TestCurrentWeek_LaterFailuresDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlanRepository(ctrl)
	week := domain.TrainingWeek{ID: "w1", StartDate: weekStart, EndDate: weekEnd}

	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).Return([]domain.TrainingWeek{week}, nil).Times(2)
	repo.EXPECT().ListDays(gomock.Any(), "w1").Return(nil, repository.ErrUnreachable)
	repo.EXPECT().ListDays(gomock.Any(), "w1").Return([]domain.TrainingDay{{ID: "d1"}}, nil)
	repo.EXPECT().GetCompletionMap(gomock.Any(), "w1", "s1").Return(nil, repository.ErrUnreachable)

	e := newTestEngine(repo, nil)
	assert.Equal(t, CheckIns{}, e.CurrentWeek(context.Background(), "s1"))
	assert.Equal(t, CheckIns{}, e.CurrentWeek(context.Background(), "s1"))
}

func TestCurrentWeek_EmptyWeekSkipsCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlanRepository(ctrl)

	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).
		Return([]domain.TrainingWeek{{ID: "w1", StartDate: weekStart, EndDate: weekEnd}}, nil)
	repo.EXPECT().ListDays(gomock.Any(), "w1").Return([]domain.TrainingDay{}, nil)

	assert.Equal(t, CheckIns{}, newTestEngine(repo, nil).CurrentWeek(context.Background(), "s1"))
}

func TestCurrentWeek_EmptyStudentNeverCallsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlanRepository(ctrl)

	assert.Equal(t, CheckIns{}, newTestEngine(repo, nil).CurrentWeek(context.Background(), " "))
}

func TestCurrentWeek_OnlyPublishedWeeksCount(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	draft := &domain.TrainingWeek{StudentID: "s1", StartDate: weekStart, EndDate: weekEnd}
	_, err := s.CreateWeek(ctx, draft)
	require.NoError(t, err)
	d1, err := s.UpsertDay(ctx, domain.TrainingDay{WeekID: draft.ID, DayIndex: 0})
	require.NoError(t, err)
	require.NoError(t, s.SetCompletion(ctx, draft.ID, "s1", d1, true))

	e := newTestEngine(s, nil)
	assert.Equal(t, CheckIns{}, e.CurrentWeek(ctx, "s1"))

	draft.Published = true
	require.NoError(t, s.UpdateWeek(ctx, draft))
	assert.Equal(t, CheckIns{Completed: 1, Total: 1}, e.CurrentWeek(ctx, "s1"))
}

func TestWeekContaining(t *testing.T) {
	cal := calendar.New(time.UTC)
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	weeks := []domain.TrainingWeek{
		{ID: "a", StartDate: weekStart, EndDate: weekEnd, CreatedAt: created},
		{ID: "b", StartDate: weekStart.AddDate(0, 0, 1), EndDate: weekEnd, CreatedAt: created},
		{ID: "c", StartDate: weekStart.AddDate(0, 0, 1), EndDate: weekEnd, CreatedAt: created.Add(time.Hour)},
	}

	w, ok := WeekContaining(weeks, cal, today)
	require.True(t, ok)
	assert.Equal(t, "c", w.ID)

	// end date is inclusive whatever the time of day
	w, ok = WeekContaining(weeks[:1], cal, weekEnd.Add(23*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "a", w.ID)

	_, ok = WeekContaining(weeks, cal, weekEnd.AddDate(0, 0, 1))
	assert.False(t, ok)
}
