package service

import (
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/metrics"
	"alcyxob/weekly-plans/internal/progress"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/schedule"
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// WeekUpdate carries the editable week fields. Nil fields are left as they are.
type WeekUpdate struct {
	StartDate *time.Time
	EndDate   *time.Time
	Published *bool
}

// DayInput is a trainer's day form. A nil Date lets the slot derive it.
type DayInput struct {
	DayIndex    int
	DayName     string
	Date        *time.Time
	Title       string
	Description string
	Blocks      []domain.Block
}

// EditorState is what the day form shows for a slot.
type EditorState struct {
	DayIndex     int
	Date         time.Time
	EditingDayID string
	Draft        schedule.Draft
	Occupied     []int
}

// SaveDayResult is the outcome of a save plus the form state the editor moved on to.
// Next is nil when the day was stored but the week could not be read back.
type SaveDayResult struct {
	DayID   string
	Created bool
	Next    *EditorState
}

// PlanService is the trainer side of the plans.
type PlanService interface {
	CreateWeek(ctx context.Context, caller domain.Identity, studentID string, start, end time.Time, published bool) (*domain.TrainingWeek, error)
	ListStudentWeeks(ctx context.Context, caller domain.Identity, studentID string) ([]domain.TrainingWeek, error)
	UpdateWeek(ctx context.Context, caller domain.Identity, weekID string, update WeekUpdate) (*domain.TrainingWeek, error)
	ListDays(ctx context.Context, caller domain.Identity, weekID string) ([]domain.TrainingDay, error)
	PreviewDay(ctx context.Context, caller domain.Identity, weekID string, dayIndex *int) (*EditorState, error)
	SaveDay(ctx context.Context, caller domain.Identity, weekID string, in DayInput) (*SaveDayResult, error)
	DeleteDay(ctx context.Context, caller domain.Identity, weekID, dayID string) error
	StudentProgress(ctx context.Context, caller domain.Identity, studentID string) (progress.CheckIns, error)
}

type planService struct {
	repo    repository.Store
	engine  *progress.Engine
	clock   calendar.Clock
	cal     calendar.Calendar
	metrics *metrics.Manager
}

// NewPlanService creates the trainer service. m may be nil.
func NewPlanService(repo repository.Store, engine *progress.Engine, clock calendar.Clock, cal calendar.Calendar, m *metrics.Manager) PlanService {
	if clock == nil {
		clock = calendar.SystemClock
	}
	return &planService{
		repo:    repo,
		engine:  engine,
		clock:   clock,
		cal:     cal,
		metrics: m,
	}
}

// ownedWeek loads a week the trainer may edit.
func (s *planService) ownedWeek(ctx context.Context, caller domain.Identity, weekID string) (*domain.TrainingWeek, error) {
	if err := requireRole(caller, domain.RoleTrainer); err != nil {
		return nil, err
	}
	if err := requireID("weekId", weekID); err != nil {
		return nil, err
	}
	week, err := getWeek(ctx, s.repo, weekID)
	if err != nil {
		return nil, err
	}
	if !week.OwnedBy(caller.UserID) {
		return nil, ErrWeekAccessDenied
	}
	return week, nil
}

func (s *planService) CreateWeek(ctx context.Context, caller domain.Identity, studentID string, start, end time.Time, published bool) (_ *domain.TrainingWeek, err error) {
	ctx, span := tracer.Start(ctx, "service.plans.createWeek")
	defer func() { endSpan(span, err) }()

	if err := requireRole(caller, domain.RoleTrainer); err != nil {
		return nil, err
	}
	if err := requireID("studentId", studentID); err != nil {
		return nil, err
	}
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", repository.ErrInvalidArgument)
	}
	if !s.cal.Ordered(start, end) {
		return nil, ErrInvalidDateRange
	}

	week := &domain.TrainingWeek{
		StudentID: studentID,
		TrainerID: caller.UserID,
		StartDate: s.cal.Day(start),
		EndDate:   s.cal.Day(end),
		Published: published,
	}
	if _, err := s.repo.CreateWeek(ctx, week); err != nil {
		return nil, fmt.Errorf("create week: %w", err)
	}
	span.SetAttributes(attribute.String("week.id", week.ID))
	return week, nil
}

func (s *planService) ListStudentWeeks(ctx context.Context, caller domain.Identity, studentID string) (_ []domain.TrainingWeek, err error) {
	ctx, span := tracer.Start(ctx, "service.plans.listStudentWeeks")
	defer func() { endSpan(span, err) }()

	if err := requireRole(caller, domain.RoleTrainer); err != nil {
		return nil, err
	}
	if err := requireID("studentId", studentID); err != nil {
		return nil, err
	}

	weeks, err := s.repo.ListWeeks(ctx, studentID, false)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.TrainingWeek{}, nil
		}
		return nil, fmt.Errorf("list weeks: %w", err)
	}

	// other trainers' weeks for the same student stay hidden
	owned := make([]domain.TrainingWeek, 0, len(weeks))
	for _, w := range weeks {
		if w.OwnedBy(caller.UserID) {
			owned = append(owned, w)
		}
	}
	schedule.SortWeeks(owned)
	return owned, nil
}

func (s *planService) UpdateWeek(ctx context.Context, caller domain.Identity, weekID string, update WeekUpdate) (_ *domain.TrainingWeek, err error) {
	ctx, span := tracer.Start(ctx, "service.plans.updateWeek")
	defer func() { endSpan(span, err) }()

	week, err := s.ownedWeek(ctx, caller, weekID)
	if err != nil {
		return nil, err
	}
	if update.StartDate != nil {
		week.StartDate = s.cal.Day(*update.StartDate)
	}
	if update.EndDate != nil {
		week.EndDate = s.cal.Day(*update.EndDate)
	}
	if update.Published != nil {
		week.Published = *update.Published
	}
	if !s.cal.Ordered(week.StartDate, week.EndDate) {
		return nil, ErrInvalidDateRange
	}

	if err := s.repo.UpdateWeek(ctx, week); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeekNotFound
		}
		return nil, fmt.Errorf("update week: %w", err)
	}
	return week, nil
}

func (s *planService) ListDays(ctx context.Context, caller domain.Identity, weekID string) (_ []domain.TrainingDay, err error) {
	ctx, span := tracer.Start(ctx, "service.plans.listDays")
	defer func() { endSpan(span, err) }()

	if _, err := s.ownedWeek(ctx, caller, weekID); err != nil {
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

func (s *planService) openEditor(ctx context.Context, weekID string) (*schedule.Editor, error) {
	return schedule.Open(ctx, s.repo, weekID, schedule.WithClock(s.clock), schedule.WithCalendar(s.cal))
}

func (s *planService) PreviewDay(ctx context.Context, caller domain.Identity, weekID string, dayIndex *int) (_ *EditorState, err error) {
	ctx, span := tracer.Start(ctx, "service.plans.previewDay")
	defer func() { endSpan(span, err) }()

	if _, err := s.ownedWeek(ctx, caller, weekID); err != nil {
		return nil, err
	}
	editor, err := s.openEditor(ctx, weekID)
	if err != nil {
		return nil, err
	}
	if dayIndex != nil {
		if err := editor.SelectIndex(*dayIndex); err != nil {
			return nil, err
		}
	}
	state := editorState(editor)
	return &state, nil
}

func (s *planService) SaveDay(ctx context.Context, caller domain.Identity, weekID string, in DayInput) (_ *SaveDayResult, err error) {
	ctx, span := tracer.Start(ctx, "service.plans.saveDay")
	defer func() { endSpan(span, err) }()

	if _, err := s.ownedWeek(ctx, caller, weekID); err != nil {
		return nil, err
	}
	editor, err := s.openEditor(ctx, weekID)
	if err != nil {
		return nil, err
	}
	if err := editor.SelectIndex(in.DayIndex); err != nil {
		return nil, err
	}
	if in.Date != nil {
		editor.SetDate(*in.Date)
	}
	editor.SetDayName(in.DayName)
	editor.SetTitle(in.Title)
	editor.SetDescription(in.Description)
	editor.SetBlocks(in.Blocks)

	saved, saveErr := editor.Save(ctx)
	if saved.DayID == "" {
		return nil, saveErr
	}
	s.countSave(saved.Created)
	span.SetAttributes(attribute.String("day.id", saved.DayID), attribute.Bool("day.created", saved.Created))

	result := &SaveDayResult{DayID: saved.DayID, Created: saved.Created}
	if saveErr != nil {
		// the day is stored; only the follow-up read failed, so there is no next form
		log.WithFields(log.Fields{
			"week_id": weekID,
			"day_id":  saved.DayID,
		}).Warnf("day saved but the week could not be reloaded: %v", saveErr)
		return result, nil
	}
	next := editorState(editor)
	result.Next = &next
	return result, nil
}

func (s *planService) countSave(created bool) {
	if s.metrics == nil {
		return
	}
	kind := "update"
	if created {
		kind = "create"
	}
	s.metrics.CounterDaySaves.WithLabelValues(kind).Inc()
}

func (s *planService) DeleteDay(ctx context.Context, caller domain.Identity, weekID, dayID string) (err error) {
	ctx, span := tracer.Start(ctx, "service.plans.deleteDay")
	defer func() { endSpan(span, err) }()

	if err := requireID("dayId", dayID); err != nil {
		return err
	}
	if _, err := s.ownedWeek(ctx, caller, weekID); err != nil {
		return err
	}
	if err := s.repo.DeleteDay(ctx, weekID, dayID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDayNotFound
		}
		return fmt.Errorf("delete day: %w", err)
	}
	return nil
}

func (s *planService) StudentProgress(ctx context.Context, caller domain.Identity, studentID string) (_ progress.CheckIns, err error) {
	ctx, span := tracer.Start(ctx, "service.plans.studentProgress")
	defer func() { endSpan(span, err) }()

	if err := requireRole(caller, domain.RoleTrainer); err != nil {
		return progress.CheckIns{}, err
	}
	if err := requireID("studentId", studentID); err != nil {
		return progress.CheckIns{}, err
	}
	return s.engine.CurrentWeek(ctx, studentID), nil
}

func editorState(e *schedule.Editor) EditorState {
	draft := e.Draft()
	occupied := make([]int, 0, domain.DaysPerWeek)
	existing := e.ExistingDays()
	for i := domain.FirstDayIndex; i <= domain.LastDayIndex; i++ {
		if _, ok := existing[i]; ok {
			occupied = append(occupied, i)
		}
	}
	return EditorState{
		DayIndex:     draft.DayIndex,
		Date:         draft.Date,
		EditingDayID: e.EditingDayID(),
		Draft:        draft,
		Occupied:     occupied,
	}
}
