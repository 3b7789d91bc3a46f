package api

import (
	"alcyxob/weekly-plans/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService service.StudentService
}

func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// GetMyWeeks godoc
// @Summary List the student's published weeks
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WeekResponse
// @Failure 403 {object} gin.H "Forbidden (not a student)"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /student/weeks [get]
func (h *StudentHandler) GetMyWeeks(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	weeks, err := h.studentService.ListWeeks(c.Request.Context(), caller)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve training weeks.")
		return
	}
	c.JSON(http.StatusOK, MapWeeksToResponse(weeks))
}

// GetWeekDays godoc
// @Summary List a published week's days with their completion
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Success 200 {array} DayResponse
// @Failure 403 {object} gin.H "Forbidden (not the student's published week)"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /student/weeks/{weekId}/days [get]
func (h *StudentHandler) GetWeekDays(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	weekID := c.Param("weekId")

	days, err := h.studentService.ListDays(ctx, caller, weekID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve training days.")
		return
	}
	completion, err := h.studentService.GetCompletion(ctx, caller, weekID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve completion.")
		return
	}
	c.JSON(http.StatusOK, MapDaysToResponse(days, completion))
}

// GetCompletion godoc
// @Summary The student's completion map for a week
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Success 200 {object} CompletionResponse
// @Failure 403 {object} gin.H "Forbidden (not the student's published week)"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /student/weeks/{weekId}/completion [get]
func (h *StudentHandler) GetCompletion(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	weekID := c.Param("weekId")
	completion, err := h.studentService.GetCompletion(c.Request.Context(), caller, weekID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve completion.")
		return
	}
	c.JSON(http.StatusOK, CompletionResponse{WeekID: weekID, Days: completion})
}

// SetCompletion godoc
// @Summary Mark a day done or not done
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weekId path string true "Week ID"
// @Param dayId path string true "Day ID"
// @Param completion body SetCompletionRequest true "Completion flag"
// @Success 204 "Recorded"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 403 {object} gin.H "Forbidden (not the student's published week)"
// @Failure 404 {object} gin.H "Week or day not found"
// @Failure 503 {object} gin.H "Store unreachable"
// @Router /student/weeks/{weekId}/days/{dayId}/completion [put]
func (h *StudentHandler) SetCompletion(c *gin.Context) {
	var req SetCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	err := h.studentService.SetCompletion(c.Request.Context(), caller, c.Param("weekId"), c.Param("dayId"), *req.Completed)
	if err != nil {
		respondServiceError(c, err, "Failed to record completion.")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMyProgress godoc
// @Summary Check-ins for the week containing today
// @Description Always answers; store failures fall back to zero.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProgressResponse
// @Router /student/progress [get]
func (h *StudentHandler) GetMyProgress(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	p, err := h.studentService.CurrentProgress(c.Request.Context(), caller)
	if err != nil {
		respondServiceError(c, err, "Failed to compute progress.")
		return
	}
	c.JSON(http.StatusOK, MapProgressToResponse(p))
}
