package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kiroku/internal/middleware"
	"github.com/yukikurage/kiroku/internal/repository"
)

// Handlers bundles the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth    *AuthHandler
	Records *RecordHandler
	Reports *ReportHandler

	// Users backs the session check of protected routes.
	Users repository.UserRepository
}

// RegisterRoutes mounts the health check, the metrics endpoint and the API.
// Session middleware must already be installed on r.
func RegisterRoutes(r gin.IRouter, h Handlers, metricsHandler http.Handler) {
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Kiroku API is running",
		})
	})

	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	requireAuth := middleware.RequireAuth(h.Users)

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", requireAuth, h.Auth.GetCurrentUser)
			auth.DELETE("/me", requireAuth, h.Auth.DeleteAccount)
		}

		api.GET("/body-parts", GetBodyParts)

		// Record routes (protected)
		records := api.Group("/records")
		records.Use(requireAuth)
		{
			records.GET("", h.Records.ListRecords)
			records.POST("", h.Records.CreateRecord)
			records.DELETE("/:id", middleware.RequireRecordID(), h.Records.DeleteRecord)
		}

		// Report routes (protected)
		reports := api.Group("/report")
		reports.Use(requireAuth)
		{
			reports.GET("", h.Reports.GetReport)
			reports.GET("/chart", h.Reports.GetReportChart)
		}
	}
}
