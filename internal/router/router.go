package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/agendago/backend/api/handler"
)

type Handlers struct {
	Activity *apiHandler.ActivityHandler
	Insight  *apiHandler.InsightHandler
	Backup   *apiHandler.BackupHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Activity lifecycle
	r.GET("/api/v1/activities", handlers.Activity.ListActivities)
	r.POST("/api/v1/activities", handlers.Activity.CreateActivity)
	r.PUT("/api/v1/activities/{id}", handlers.Activity.UpdateActivity)
	r.POST("/api/v1/activities/{id}/toggle", handlers.Activity.ToggleActivity)
	r.DELETE("/api/v1/activities/{id}", handlers.Activity.DeleteActivity)
	r.DELETE("/api/v1/activities", handlers.Activity.ClearActivities)

	// Derived views
	r.GET("/api/v1/stats", handlers.Insight.GetStats)
	r.GET("/api/v1/notifications", handlers.Insight.GetNotifications)
	r.GET("/api/v1/calendar", handlers.Insight.GetCalendarDay)
	r.GET("/api/v1/upcoming", handlers.Insight.GetUpcoming)

	// Backup
	r.GET("/api/v1/export", handlers.Backup.ExportData)
	r.POST("/api/v1/import", handlers.Backup.ImportData)

	return r
}
