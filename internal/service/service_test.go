package service

import (
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/metrics"
	"alcyxob/weekly-plans/internal/progress"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/repository/memory"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC)
	weekStart = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	weekEnd   = time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	trainer      = domain.Identity{UserID: "t1", Role: domain.RoleTrainer}
	otherTrainer = domain.Identity{UserID: "t2", Role: domain.RoleTrainer}
	student      = domain.Identity{UserID: "s1", Role: domain.RoleStudent}
	otherStudent = domain.Identity{UserID: "s2", Role: domain.RoleStudent}
)

type fixture struct {
	store    *memory.Store
	plans    PlanService
	students StudentService
	metrics  *metrics.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return newFixtureWithRepo(t, store, store)
}

func newFixtureWithRepo(t *testing.T, store *memory.Store, repo repository.Store) *fixture {
	t.Helper()
	clock := calendar.Fixed(now)
	cal := calendar.New(time.UTC)
	m := metrics.NewTestManager()
	engine := progress.NewEngine(repo, clock, cal, m)
	return &fixture{
		store:    store,
		plans:    NewPlanService(repo, engine, clock, cal, m),
		students: NewStudentService(repo, engine),
		metrics:  m,
	}
}

func (f *fixture) week(t *testing.T, published bool) *domain.TrainingWeek {
	t.Helper()
	w, err := f.plans.CreateWeek(context.Background(), trainer, student.UserID, weekStart, weekEnd, published)
	require.NoError(t, err)
	return w
}

func (f *fixture) day(t *testing.T, weekID string, index int, title string) string {
	t.Helper()
	res, err := f.plans.SaveDay(context.Background(), trainer, weekID, DayInput{
		DayIndex: index,
		DayName:  "Day",
		Title:    title,
	})
	require.NoError(t, err)
	return res.DayID
}
