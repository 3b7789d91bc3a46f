package api

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/progress"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// --- Week DTOs ---

type CreateWeekRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	Published bool      `json:"published"`
}

// UpdateWeekRequest leaves omitted fields untouched.
type UpdateWeekRequest struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Published *bool      `json:"published"`
}

type WeekResponse struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	TrainerID string    `json:"trainerId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func MapWeekToResponse(w *domain.TrainingWeek) WeekResponse {
	return WeekResponse{
		ID:        w.ID,
		StudentID: w.StudentID,
		TrainerID: w.TrainerID,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		Published: w.Published,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func MapWeeksToResponse(weeks []domain.TrainingWeek) []WeekResponse {
	out := make([]WeekResponse, len(weeks))
	for i := range weeks {
		out[i] = MapWeekToResponse(&weeks[i])
	}
	return out
}

// --- Day DTOs ---

type BlockPayload struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Details string `json:"details,omitempty"`
}

// SaveDayRequest is the day form. Without a date the slot derives one.
type SaveDayRequest struct {
	DayName     string         `json:"dayName" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Date        *time.Time     `json:"date"`
	Blocks      []BlockPayload `json:"blocks"`
}

type DayResponse struct {
	ID          string         `json:"id"`
	WeekID      string         `json:"weekId"`
	DayIndex    int            `json:"dayIndex"`
	DayName     string         `json:"dayName"`
	Date        time.Time      `json:"date"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Blocks      []BlockPayload `json:"blocks"`
	Completed   *bool          `json:"completed,omitempty"`
}

func mapBlocks(blocks []domain.Block) []BlockPayload {
	out := make([]BlockPayload, len(blocks))
	for i, b := range blocks {
		out[i] = BlockPayload{ID: b.ID, Name: b.Name, Details: b.Details}
	}
	return out
}

func mapBlockPayloads(blocks []BlockPayload) []domain.Block {
	out := make([]domain.Block, len(blocks))
	for i, b := range blocks {
		out[i] = domain.Block{ID: b.ID, Name: b.Name, Details: b.Details}
	}
	return out
}

func MapDayToResponse(d *domain.TrainingDay) DayResponse {
	return DayResponse{
		ID:          d.ID,
		WeekID:      d.WeekID,
		DayIndex:    d.DayIndex,
		DayName:     d.DayName,
		Date:        d.Date,
		Title:       d.Title,
		Description: d.Description,
		Blocks:      mapBlocks(d.Blocks),
	}
}

// MapDaysToResponse converts days; with a completion map each day carries its status.
func MapDaysToResponse(days []domain.TrainingDay, completion domain.CompletionMap) []DayResponse {
	out := make([]DayResponse, len(days))
	for i := range days {
		out[i] = MapDayToResponse(&days[i])
		if completion != nil {
			done := completion[days[i].ID]
			out[i].Completed = &done
		}
	}
	return out
}

type EditorResponse struct {
	DayIndex     int            `json:"dayIndex"`
	Date         time.Time      `json:"date"`
	EditingDayID string         `json:"editingDayId,omitempty"`
	DayName      string         `json:"dayName"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Blocks       []BlockPayload `json:"blocks"`
	Occupied     []int          `json:"occupied"`
}

func MapEditorToResponse(s service.EditorState) EditorResponse {
	return EditorResponse{
		DayIndex:     s.DayIndex,
		Date:         s.Date,
		EditingDayID: s.EditingDayID,
		DayName:      s.Draft.DayName,
		Title:        s.Draft.Title,
		Description:  s.Draft.Description,
		Blocks:       mapBlocks(s.Draft.Blocks),
		Occupied:     s.Occupied,
	}
}

type SaveDayResponse struct {
	DayID   string          `json:"dayId"`
	Created bool            `json:"created"`
	Next    *EditorResponse `json:"next,omitempty"`
}

// --- Completion DTOs ---

// SetCompletionRequest uses a pointer so an explicit false is distinguishable from a missing field.
type SetCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type CompletionResponse struct {
	WeekID string          `json:"weekId"`
	Days   map[string]bool `json:"days"`
}

type ProgressResponse struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

func MapProgressToResponse(p progress.CheckIns) ProgressResponse {
	return ProgressResponse{Completed: p.Completed, Total: p.Total}
}

// respondServiceError maps service and store errors to HTTP responses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrInvalidArgument), errors.Is(err, service.ErrInvalidDateRange):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRoleNotAllowed), errors.Is(err, service.ErrWeekAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrWeekNotFound), errors.Is(err, service.ErrDayNotFound), errors.Is(err, repository.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrUnreachable):
		log.WithField("path", c.FullPath()).Warnf("store unreachable: %v", err)
		abortWithError(c, http.StatusServiceUnavailable, "Plan store is unreachable, please retry.")
	default:
		log.WithField("path", c.FullPath()).Errorf("%s: %v", fallback, err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
