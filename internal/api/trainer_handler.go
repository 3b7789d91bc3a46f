// internal/api/trainer_handler.go
package api

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	planService service.PlanService
}

func NewTrainerHandler(planService service.PlanService) *TrainerHandler {
	return &TrainerHandler{planService: planService}
}

// callerOrAbort returns the authenticated caller, aborting with 401 when there is none.
func callerOrAbort(c *gin.Context) (domain.Identity, bool) {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return domain.Identity{}, false
	}
	return identity, true
}

// CreateWeek godoc
// @Summary Create a training week for a student
// @Tags Trainer Weeks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param week body CreateWeekRequest true "Week dates"
// @Success 201 {object} WeekResponse
// @Failure 400 {object} gin.H "Validation error or end before start"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /trainer/students/{studentId}/weeks [post]
func (h *TrainerHandler) CreateWeek(c *gin.Context) {
	var req CreateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	week, err := h.planService.CreateWeek(c.Request.Context(), caller, c.Param("studentId"), req.StartDate, req.EndDate, req.Published)
	if err != nil {
		respondServiceError(c, err, "Failed to create training week.")
		return
	}
	c.JSON(http.StatusCreated, MapWeekToResponse(week))
}

// GetStudentWeeks godoc
// @Summary List the trainer's weeks for a student
// @Description Newest start date first, drafts included.
// @Tags Trainer Weeks
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {array} WeekResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /trainer/students/{studentId}/weeks [get]
func (h *TrainerHandler) GetStudentWeeks(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	weeks, err := h.planService.ListStudentWeeks(c.Request.Context(), caller, c.Param("studentId"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve training weeks.")
		return
	}
	c.JSON(http.StatusOK, MapWeeksToResponse(weeks))
}

// UpdateWeek godoc
// @Summary Change a week's dates or publish it
// @Tags Trainer Weeks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Param week body UpdateWeekRequest true "Fields to change"
// @Success 200 {object} WeekResponse
// @Failure 400 {object} gin.H "Validation error or end before start"
// @Failure 403 {object} gin.H "Forbidden (not the week's trainer)"
// @Failure 404 {object} gin.H "Week not found"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /trainer/weeks/{weekId} [patch]
func (h *TrainerHandler) UpdateWeek(c *gin.Context) {
	var req UpdateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	week, err := h.planService.UpdateWeek(c.Request.Context(), caller, c.Param("weekId"), service.WeekUpdate{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Published: req.Published,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update training week.")
		return
	}
	c.JSON(http.StatusOK, MapWeekToResponse(week))
}

// GetWeekDays godoc
// @Summary List a week's days in slot order
// @Tags Trainer Days
// @Produce json
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Success 200 {array} DayResponse "Empty when the week does not exist"
// @Failure 403 {object} gin.H "Forbidden (not the week's trainer)"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /trainer/weeks/{weekId}/days [get]
func (h *TrainerHandler) GetWeekDays(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	days, err := h.planService.ListDays(c.Request.Context(), caller, c.Param("weekId"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve training days.")
		return
	}
	c.JSON(http.StatusOK, MapDaysToResponse(days, nil))
}

// GetEditor godoc
// @Summary Day form defaults for a slot
// @Description Without dayIndex the first free slot is chosen. An occupied slot is prefilled.
// @Tags Trainer Days
// @Produce json
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Param dayIndex query int false "Slot 0-6"
// @Success 200 {object} EditorResponse
// @Failure 400 {object} gin.H "Invalid slot"
// @Failure 403 {object} gin.H "Forbidden (not the week's trainer)"
// @Failure 404 {object} gin.H "Week not found"
// @Router /trainer/weeks/{weekId}/editor [get]
func (h *TrainerHandler) GetEditor(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var dayIndex *int
	if raw, present := c.GetQuery("dayIndex"); present {
		i, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "dayIndex must be an integer.")
			return
		}
		dayIndex = &i
	}

	state, err := h.planService.PreviewDay(c.Request.Context(), caller, c.Param("weekId"), dayIndex)
	if err != nil {
		respondServiceError(c, err, "Failed to prepare the day form.")
		return
	}
	c.JSON(http.StatusOK, MapEditorToResponse(*state))
}

// SaveDay godoc
// @Summary Save the day in a slot
// @Description Updates the slot's day when one exists, otherwise creates it. Blocks with empty names are dropped.
// @Description "next" is omitted when the day was stored but the follow-up form could not be prepared.
// @Tags Trainer Days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Param dayIndex path int true "Slot 0-6"
// @Param day body SaveDayRequest true "Day content"
// @Success 200 {object} SaveDayResponse "Updated"
// @Success 201 {object} SaveDayResponse "Created"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 403 {object} gin.H "Forbidden (not the week's trainer)"
// @Failure 404 {object} gin.H "Week not found"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /trainer/weeks/{weekId}/days/{dayIndex} [put]
func (h *TrainerHandler) SaveDay(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("dayIndex"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "dayIndex must be an integer.")
		return
	}
	var req SaveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	res, err := h.planService.SaveDay(c.Request.Context(), caller, c.Param("weekId"), service.DayInput{
		DayIndex:    dayIndex,
		DayName:     req.DayName,
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Blocks:      mapBlockPayloads(req.Blocks),
	})
	if err != nil {
		respondServiceError(c, err, "Failed to save training day.")
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	resp := SaveDayResponse{DayID: res.DayID, Created: res.Created}
	if res.Next != nil {
		next := MapEditorToResponse(*res.Next)
		resp.Next = &next
	}
	c.JSON(status, resp)
}

// DeleteDay godoc
// @Summary Remove a day from a week
// @Tags Trainer Days
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Param dayId path string true "Day ID"
// @Success 204 "Deleted"
// @Failure 403 {object} gin.H "Forbidden (not the week's trainer)"
// @Failure 404 {object} gin.H "Week or day not found"
// @Router /trainer/weeks/{weekId}/days/{dayId} [delete]
func (h *TrainerHandler) DeleteDay(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.planService.DeleteDay(c.Request.Context(), caller, c.Param("weekId"), c.Param("dayId")); err != nil {
		respondServiceError(c, err, "Failed to delete training day.")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStudentProgress godoc
// @Summary A student's check-ins for the current week
// @Description Falls back to zero when the store cannot be read.
// @Tags Trainer Progress
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} ProgressResponse
// @Router /trainer/students/{studentId}/progress [get]
func (h *TrainerHandler) GetStudentProgress(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	p, err := h.planService.StudentProgress(c.Request.Context(), caller, c.Param("studentId"))
	if err != nil {
		respondServiceError(c, err, "Failed to compute progress.")
		return
	}
	c.JSON(http.StatusOK, MapProgressToResponse(p))
}
