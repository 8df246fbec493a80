package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/app"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(a.Log),
		middleware.CORSMiddleware(),
		middleware.RateLimitMiddleware(middleware.NewRateLimiter(a.Config.RateLimitPerMin), a.Log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		a.Book,
		a.Accept,
		a.Reject,
		a.Check,
		a.List,
		a.Availability,
		a.Log,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(a.Config.JWTSecret))
	{
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.POST("/appointments/check", appointmentHandler.Check)
		api.POST("/appointments", appointmentHandler.Create)

		api.POST("/bookings/:id/accept", appointmentHandler.AcceptSuggestion)
		api.POST("/bookings/:id/reject", appointmentHandler.RejectSuggestions)
	}
}
