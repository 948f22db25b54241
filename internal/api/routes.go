package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tel *telemetry.Provider) {
	v1 := router.Group("/api/v1")

	// Classification endpoints
	classify := v1.Group("/classify")
	classify.POST("", handler.Classify)            // POST /api/v1/classify
	classify.POST("/batch", handler.ClassifyBatch) // POST /api/v1/classify/batch

	// Aggregation endpoint
	v1.POST("/aggregate", handler.Aggregate) // POST /api/v1/aggregate

	// Video analysis endpoints
	videos := v1.Group("/videos")
	videos.POST("/:video_id/analyze", handler.AnalyzeVideo) // POST /api/v1/videos/:video_id/analyze
	videos.GET("/:video_id/summary", handler.GetSummary)    // GET /api/v1/videos/:video_id/summary

	// Backend health
	v1.GET("/backends/health", handler.BackendsHealth) // GET /api/v1/backends/health

	// Service health and metrics
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(tel.Handler()))
}
