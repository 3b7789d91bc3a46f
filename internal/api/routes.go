package api

import (
	"alcyxob/weekly-plans/internal/auth"
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/metrics"
	"alcyxob/weekly-plans/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers every route. m and gatherer may be nil, in which case no
// request metrics are collected and /metrics is not served.
func SetupRoutes(
	router *gin.Engine,
	tokens *auth.Tokens,
	planService service.PlanService,
	studentService service.StudentService,
	m *metrics.Manager,
	gatherer prometheus.Gatherer,
) {
	trainerHandler := NewTrainerHandler(planService)
	studentHandler := NewStudentHandler(studentService)

	router.Use(RequestLogger())
	if m != nil {
		router.Use(MetricsMiddleware(m))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(tokens))
	{
		protected.GET("/me", func(c *gin.Context) {
			identity, ok := callerOrAbort(c)
			if !ok {
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": identity.Role})
		})

		// --- Trainer Routes ---
		trainerApiGroup := protected.Group("/trainer")
		trainerApiGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			// POST /api/v1/trainer/students/{studentId}/weeks
			trainerApiGroup.POST("/students/:studentId/weeks", trainerHandler.CreateWeek)
			// GET /api/v1/trainer/students/{studentId}/weeks
			trainerApiGroup.GET("/students/:studentId/weeks", trainerHandler.GetStudentWeeks)
			// GET /api/v1/trainer/students/{studentId}/progress
			trainerApiGroup.GET("/students/:studentId/progress", trainerHandler.GetStudentProgress)

			// PATCH /api/v1/trainer/weeks/{weekId}
			trainerApiGroup.PATCH("/weeks/:weekId", trainerHandler.UpdateWeek)
			trainerApiGroup.GET("/weeks/:weekId/days", trainerHandler.GetWeekDays)
			trainerApiGroup.GET("/weeks/:weekId/editor", trainerHandler.GetEditor)
			// PUT takes the slot, DELETE takes the day id
			trainerApiGroup.PUT("/weeks/:weekId/days/:dayIndex", trainerHandler.SaveDay)
			trainerApiGroup.DELETE("/weeks/:weekId/days/:dayId", trainerHandler.DeleteDay)
		}

		// --- Student Routes ---
		studentApiGroup := protected.Group("/student")
		studentApiGroup.Use(RoleMiddleware(domain.RoleStudent))
		{
			studentApiGroup.GET("/weeks", studentHandler.GetMyWeeks)
			studentApiGroup.GET("/weeks/:weekId/days", studentHandler.GetWeekDays)
			studentApiGroup.GET("/weeks/:weekId/completion", studentHandler.GetCompletion)
			studentApiGroup.PUT("/weeks/:weekId/days/:dayId/completion", studentHandler.SetCompletion)
			studentApiGroup.GET("/progress", studentHandler.GetMyProgress)
		}
	}
}
