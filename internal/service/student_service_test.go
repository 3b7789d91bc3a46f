package service

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/progress"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/repository/memory"
	"alcyxob/weekly-plans/internal/repository/mocks"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStudent_ListWeeksPublishedOnly(t *testing.T) {
	f := newFixture(t)
	published := f.week(t, true)
	f.week(t, false)

	weeks, err := f.students.ListWeeks(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, published.ID, weeks[0].ID)

	_, err = f.students.ListWeeks(context.Background(), trainer)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
}

func TestStudent_WeekVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := f.week(t, false)
	published := f.week(t, true)
	f.day(t, published.ID, 0, "Push")

	_, err := f.students.ListDays(ctx, student, draft.ID)
	assert.ErrorIs(t, err, ErrWeekAccessDenied)

	_, err = f.students.ListDays(ctx, otherStudent, published.ID)
	assert.ErrorIs(t, err, ErrWeekAccessDenied)

	days, err := f.students.ListDays(ctx, student, published.ID)
	require.NoError(t, err)
	assert.Len(t, days, 1)

	days, err = f.students.ListDays(ctx, student, "missing")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestStudent_Completion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.week(t, true)
	d0 := f.day(t, w.ID, 0, "Push")
	d1 := f.day(t, w.ID, 1, "Pull")

	completion, err := f.students.GetCompletion(ctx, student, w.ID)
	require.NoError(t, err)
	assert.Empty(t, completion)

	require.NoError(t, f.students.SetCompletion(ctx, student, w.ID, d0, true))
	require.NoError(t, f.students.SetCompletion(ctx, student, w.ID, d1, true))
	require.NoError(t, f.students.SetCompletion(ctx, student, w.ID, d1, false))

	completion, err = f.students.GetCompletion(ctx, student, w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionMap{d0: true, d1: false}, completion)

	assert.ErrorIs(t, f.students.SetCompletion(ctx, student, w.ID, "nope", true), ErrDayNotFound)
	assert.ErrorIs(t, f.students.SetCompletion(ctx, student, "missing", d0, true), ErrWeekNotFound)

	got, err := f.students.CurrentProgress(ctx, student)
	require.NoError(t, err)
	assert.Equal(t, progress.CheckIns{Completed: 1, Total: 2}, got)
}

func TestStudent_ProgressDegradesWhenStoreIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStore(ctrl)
	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).Return(nil, repository.ErrUnreachable)

	f := newFixtureWithRepo(t, memory.NewStore(), repo)
	got, err := f.students.CurrentProgress(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, progress.CheckIns{}, got)
}

func TestStudent_UnreachableSurfacesOnReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStore(ctrl)
	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).Return(nil, repository.ErrUnreachable)

	f := newFixtureWithRepo(t, memory.NewStore(), repo)
	_, err := f.students.ListWeeks(context.Background(), student)
	assert.ErrorIs(t, err, repository.ErrUnreachable)
}
