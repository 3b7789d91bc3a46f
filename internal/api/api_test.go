package api

import (
	"alcyxob/weekly-plans/internal/auth"
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/metrics"
	"alcyxob/weekly-plans/internal/progress"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/repository/memory"
	"alcyxob/weekly-plans/internal/repository/mocks"
	"alcyxob/weekly-plans/internal/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	now       = time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC)
	weekStart = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	weekEnd   = time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
)

type testServer struct {
	router  *gin.Engine
	tokens  *auth.Tokens
	metrics *metrics.Manager
}

func newTestServer(t *testing.T, repo repository.Store) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokens("test-secret", time.Hour)
	require.NoError(t, err)

	m, reg := metrics.NewTestManagerAndRegistry()
	clock := calendar.Fixed(now)
	cal := calendar.New(time.UTC)
	engine := progress.NewEngine(repo, clock, cal, m)

	router := gin.New()
	SetupRoutes(router, tokens,
		service.NewPlanService(repo, engine, clock, cal, m),
		service.NewStudentService(repo, engine),
		m, reg)
	return &testServer{router: router, tokens: tokens, metrics: m}
}

func (s *testServer) do(t *testing.T, id *domain.Identity, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if id != nil {
		token, err := s.tokens.Issue(*id)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

var (
	asTrainer = &domain.Identity{UserID: "t1", Role: domain.RoleTrainer}
	asStudent = &domain.Identity{UserID: "s1", Role: domain.RoleStudent}
)

func TestPing(t *testing.T) {
	s := newTestServer(t, memory.NewStore())
	rec := s.do(t, nil, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth(t *testing.T) {
	s := newTestServer(t, memory.NewStore())

	rec := s.do(t, nil, http.MethodGet, "/api/v1/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, asStudent, http.MethodGet, "/api/v1/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":"s1"`)

	rec = s.do(t, asStudent, http.MethodGet, "/api/v1/trainer/students/s1/weeks", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, asTrainer, http.MethodGet, "/api/v1/student/weeks", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTrainerAndStudentFlow(t *testing.T) {
	s := newTestServer(t, memory.NewStore())

	rec := s.do(t, asTrainer, http.MethodPost, "/api/v1/trainer/students/s1/weeks", CreateWeekRequest{
		StartDate: weekStart,
		EndDate:   weekEnd,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	week := decode[WeekResponse](t, rec)
	assert.False(t, week.Published)

	// drafts are invisible to the student
	rec = s.do(t, asStudent, http.MethodGet, "/api/v1/student/weeks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]WeekResponse](t, rec))

	rec = s.do(t, asTrainer, http.MethodPut, "/api/v1/trainer/weeks/"+week.ID+"/days/0", SaveDayRequest{
		DayName: "Monday",
		Title:   "Push",
		Blocks:  []BlockPayload{{Name: "Bench"}, {Name: ""}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	saved := decode[SaveDayResponse](t, rec)
	assert.True(t, saved.Created)
	require.NotNil(t, saved.Next)
	assert.Equal(t, 1, saved.Next.DayIndex)

	rec = s.do(t, asTrainer, http.MethodPut, "/api/v1/trainer/weeks/"+week.ID+"/days/1", SaveDayRequest{DayName: "Tuesday", Title: "Pull"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, asTrainer, http.MethodGet, "/api/v1/trainer/weeks/"+week.ID+"/editor?dayIndex=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	editor := decode[EditorResponse](t, rec)
	assert.Equal(t, saved.DayID, editor.EditingDayID)
	assert.Equal(t, "Push", editor.Title)
	assert.Len(t, editor.Blocks, 1)

	published := true
	rec = s.do(t, asTrainer, http.MethodPatch, "/api/v1/trainer/weeks/"+week.ID, UpdateWeekRequest{Published: &published})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, asStudent, http.MethodGet, "/api/v1/student/weeks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]WeekResponse](t, rec), 1)

	done := true
	rec = s.do(t, asStudent, http.MethodPut, "/api/v1/student/weeks/"+week.ID+"/days/"+saved.DayID+"/completion", SetCompletionRequest{Completed: &done})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(t, asStudent, http.MethodGet, "/api/v1/student/weeks/"+week.ID+"/days", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	days := decode[[]DayResponse](t, rec)
	require.Len(t, days, 2)
	require.NotNil(t, days[0].Completed)
	assert.True(t, *days[0].Completed)
	assert.False(t, *days[1].Completed)

	rec = s.do(t, asStudent, http.MethodGet, "/api/v1/student/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ProgressResponse{Completed: 1, Total: 2}, decode[ProgressResponse](t, rec))

	rec = s.do(t, asTrainer, http.MethodGet, "/api/v1/trainer/students/s1/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ProgressResponse{Completed: 1, Total: 2}, decode[ProgressResponse](t, rec))

	rec = s.do(t, asTrainer, http.MethodDelete, "/api/v1/trainer/weeks/"+week.ID+"/days/"+saved.DayID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.CounterDaySaves.WithLabelValues("create")))
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t, memory.NewStore())

	rec := s.do(t, asTrainer, http.MethodPost, "/api/v1/trainer/students/s1/weeks", CreateWeekRequest{StartDate: weekEnd, EndDate: weekStart})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, asTrainer, http.MethodPut, "/api/v1/trainer/weeks/missing/days/0", SaveDayRequest{DayName: "d", Title: "t"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, asTrainer, http.MethodPut, "/api/v1/trainer/weeks/w/days/x", SaveDayRequest{DayName: "d", Title: "t"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, asTrainer, http.MethodPut, "/api/v1/trainer/weeks/w/days/0", map[string]string{"title": "only"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, asTrainer, http.MethodGet, "/api/v1/trainer/weeks/missing/days", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(t, asStudent, http.MethodPut, "/api/v1/student/weeks/w/days/d/completion", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, asTrainer, http.MethodGet, "/api/v1/trainer/weeks/missing/editor?dayIndex=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnreachableStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStore(ctrl)
	repo.EXPECT().ListWeeks(gomock.Any(), "s1", true).Return(nil, repository.ErrUnreachable).Times(2)

	s := newTestServer(t, repo)

	rec := s.do(t, asStudent, http.MethodGet, "/api/v1/student/weeks", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// progress degrades instead of failing
	rec = s.do(t, asStudent, http.MethodGet, "/api/v1/student/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ProgressResponse{}, decode[ProgressResponse](t, rec))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.CounterProgressDegraded))
}

func TestSaveDay_ReloadFailureStillReturnsDayID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStore(ctrl)
	repo.EXPECT().GetWeek(gomock.Any(), "w1").
		Return(&domain.TrainingWeek{ID: "w1", TrainerID: "t1", StudentID: "s1", StartDate: weekStart, EndDate: weekEnd}, nil)
	gomock.InOrder(
		repo.EXPECT().ListDays(gomock.Any(), "w1").Return(nil, nil),
		repo.EXPECT().UpsertDay(gomock.Any(), gomock.Any()).Return("d1", nil),
		repo.EXPECT().ListDays(gomock.Any(), "w1").Return(nil, repository.ErrUnreachable),
	)

	s := newTestServer(t, repo)
	rec := s.do(t, asTrainer, http.MethodPut, "/api/v1/trainer/weeks/w1/days/0", SaveDayRequest{DayName: "Monday", Title: "Push"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "d1", body["dayId"])
	assert.Equal(t, true, body["created"])
	assert.NotContains(t, body, "next")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, memory.NewStore())
	s.do(t, nil, http.MethodGet, "/ping", nil)

	rec := s.do(t, nil, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "weekly_plans_test_request"))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.CounterRequests.WithLabelValues(http.MethodGet, "/ping", "200")))
}

func TestSetupRoutes_WithoutMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokens("x", time.Hour)
	require.NoError(t, err)
	store := memory.NewStore()
	engine := progress.NewEngine(store, nil, calendar.New(nil), nil)

	router := gin.New()
	SetupRoutes(router, tokens, service.NewPlanService(store, engine, nil, calendar.New(nil), nil), service.NewStudentService(store, engine), nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
