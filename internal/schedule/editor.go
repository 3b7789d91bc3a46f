package schedule

import (
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// Draft is the day being edited.
type Draft struct {
	DayIndex    int
	DayName     string
	Date        time.Time
	Title       string
	Description string
	Blocks      []domain.Block
}

// SaveResult tells what a save did.
type SaveResult struct {
	DayID   string
	Created bool
}

// Editor is one trainer edit session over a week. It is not safe for concurrent use.
type Editor struct {
	repo   repository.PlanRepository
	weekID string
	clock  calendar.Clock
	cal    calendar.Calendar

	existing       map[int]domain.TrainingDay
	anchor         time.Time
	draft          Draft
	editingDayID   string
	dateOverridden bool
}

type Option func(*Editor)

func WithClock(c calendar.Clock) Option {
	return func(e *Editor) { e.clock = c }
}

func WithCalendar(c calendar.Calendar) Option {
	return func(e *Editor) { e.cal = c }
}

// Open loads the week's days and selects the first free slot.
func Open(ctx context.Context, repo repository.PlanRepository, weekID string, opts ...Option) (*Editor, error) {
	if strings.TrimSpace(weekID) == "" {
		return nil, fmt.Errorf("%w: weekId is required", repository.ErrInvalidArgument)
	}
	e := &Editor{
		repo:   repo,
		weekID: weekID,
		clock:  calendar.SystemClock,
		cal:    calendar.New(time.UTC),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.Reload(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload re-reads the week and starts a fresh draft on the first free slot.
// The manual date override is cleared.
func (e *Editor) Reload(ctx context.Context) error {
	days, err := e.repo.ListDays(ctx, e.weekID)
	if err != nil {
		return fmt.Errorf("list days: %w", err)
	}
	e.existing = IndexDays(days)
	e.anchor = AnchorDate(days, e.clock.Now())
	e.draft = Draft{}
	e.editingDayID = ""
	e.dateOverridden = false
	return e.SelectIndex(FirstFreeIndex(e.existing))
}

// Anchor is the date slot 0 maps to when dates are derived.
func (e *Editor) Anchor() time.Time { return e.anchor }

// EditingDayID is the id of the stored day the draft will replace, empty for a new day.
func (e *Editor) EditingDayID() string { return e.editingDayID }

// DateOverridden reports whether the trainer picked the date by hand this session.
func (e *Editor) DateOverridden() bool { return e.dateOverridden }

// Draft returns a copy of the current draft.
func (e *Editor) Draft() Draft {
	d := e.draft
	d.Blocks = append([]domain.Block(nil), e.draft.Blocks...)
	return d
}

// ExistingDays returns a copy of the slot → day mapping.
func (e *Editor) ExistingDays() map[int]domain.TrainingDay {
	out := make(map[int]domain.TrainingDay, len(e.existing))
	for k, v := range e.existing {
		out[k] = v
	}
	return out
}

// SelectIndex moves the draft to slot i. An occupied slot prefills the draft from its day;
// a free slot derives the date from the anchor unless the date was picked by hand.
func (e *Editor) SelectIndex(i int) error {
	if !domain.ValidDayIndex(i) {
		return fmt.Errorf("%w: dayIndex %d outside %d..%d", repository.ErrInvalidArgument, i, domain.FirstDayIndex, domain.LastDayIndex)
	}

	if day, ok := e.existing[i]; ok {
		e.draft = Draft{
			DayIndex:    i,
			DayName:     day.DayName,
			Date:        day.Date,
			Title:       day.Title,
			Description: day.Description,
			Blocks:      append([]domain.Block(nil), day.Blocks...),
		}
		e.editingDayID = day.ID
		return nil
	}

	if e.editingDayID != "" {
		// leaving a stored day: its content must not be saved into a new one
		e.draft = Draft{Date: e.draft.Date}
		e.editingDayID = ""
	}
	e.draft.DayIndex = i
	if !e.dateOverridden {
		e.draft.Date = DateForIndex(e.cal, e.anchor, i)
	}
	return nil
}

// SetDate picks the date by hand. Slot changes no longer move it for the rest of the session.
func (e *Editor) SetDate(t time.Time) {
	e.draft.Date = t
	e.dateOverridden = true
}

func (e *Editor) SetDayName(name string) { e.draft.DayName = name }

func (e *Editor) SetTitle(title string) { e.draft.Title = title }

func (e *Editor) SetDescription(description string) { e.draft.Description = description }

func (e *Editor) SetBlocks(blocks []domain.Block) {
	e.draft.Blocks = append([]domain.Block(nil), blocks...)
}

// Validate reports every missing required field at once. Each error wraps ErrInvalidArgument.
func (e *Editor) Validate() error {
	var err error
	if strings.TrimSpace(e.weekID) == "" {
		err = multierr.Append(err, fmt.Errorf("%w: weekId is required", repository.ErrInvalidArgument))
	}
	if strings.TrimSpace(e.draft.DayName) == "" {
		err = multierr.Append(err, fmt.Errorf("%w: dayName is required", repository.ErrInvalidArgument))
	}
	if strings.TrimSpace(e.draft.Title) == "" {
		err = multierr.Append(err, fmt.Errorf("%w: title is required", repository.ErrInvalidArgument))
	}
	return err
}

// Save validates and persists the draft, updating the stored day when one occupies the slot.
// On success the editor reloads so the next free slot is selected. If only the reload fails,
// the saved day's result is returned together with the error.
func (e *Editor) Save(ctx context.Context) (SaveResult, error) {
	if err := e.Validate(); err != nil {
		return SaveResult{}, err
	}

	day := domain.TrainingDay{
		ID:          e.editingDayID,
		WeekID:      e.weekID,
		DayIndex:    e.draft.DayIndex,
		DayName:     strings.TrimSpace(e.draft.DayName),
		Date:        e.draft.Date,
		Title:       strings.TrimSpace(e.draft.Title),
		Description: e.draft.Description,
		Blocks:      domain.NormalizeBlocks(e.draft.Blocks),
	}

	id, err := e.repo.UpsertDay(ctx, day)
	if err != nil {
		return SaveResult{}, fmt.Errorf("upsert day: %w", err)
	}
	result := SaveResult{DayID: id, Created: day.ID == ""}

	if err := e.Reload(ctx); err != nil {
		return result, err
	}
	return result, nil
}
