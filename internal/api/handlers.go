// Package api exposes the sentiment service over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/comment-sentiment/internal/aggregate"
	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/fetch"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/pipeline"
	"github.com/jonesrussell/comment-sentiment/internal/processor"
	"github.com/jonesrussell/comment-sentiment/internal/sentiment"
)

// SummaryReader reads persisted summaries.
type SummaryReader interface {
	Get(ctx context.Context, videoID string) (*domain.VideoSummary, error)
}

// Handler handles HTTP requests for the sentiment API.
type Handler struct {
	pipeline  *pipeline.Pipeline
	processor *processor.Processor
	registry  *sentiment.Registry
	summaries SummaryReader
	logger    logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	p *pipeline.Pipeline,
	proc *processor.Processor,
	registry *sentiment.Registry,
	summaries SummaryReader,
	log logger.Logger,
) *Handler {
	return &Handler{
		pipeline:  p,
		processor: proc,
		registry:  registry,
		summaries: summaries,
		logger:    log,
	}
}

// ClassifyRequest represents a single classification request.
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents a classification response.
type ClassifyResponse struct {
	Sentiment domain.SentimentScores `json:"sentiment"`
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid classify request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scores, err := h.pipeline.Classify(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoBackendsAvailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("classification failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{Sentiment: scores})
}

// BatchClassifyRequest represents a batch classification request.
type BatchClassifyRequest struct {
	Comments []domain.Comment `json:"comments" binding:"required,min=1,max=500"`
}

// BatchClassifyResponse represents a batch classification response.
type BatchClassifyResponse struct {
	Comments []domain.Comment `json:"comments"`
	Total    int              `json:"total"`
}

// ClassifyBatch handles POST /api/v1/classify/batch.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch classify request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("classifying batch", logger.Int("batch_size", len(req.Comments)))

	comments, err := h.pipeline.ClassifyBatch(c.Request.Context(), req.Comments)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoBackendsAvailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("batch classification failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BatchClassifyResponse{
		Comments: comments,
		Total:    len(comments),
	})
}

// AggregateRequest represents an aggregation request over already
// classified comments.
type AggregateRequest struct {
	VideoID  string           `json:"video_id" binding:"required"`
	Comments []domain.Comment `json:"comments"`
}

// Aggregate handles POST /api/v1/aggregate.
func (h *Handler) Aggregate(c *gin.Context) {
	var req AggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid aggregate request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary := aggregate.Summarize(req.VideoID, req.Comments)
	c.JSON(http.StatusOK, summary)
}

// AnalyzeRequest tunes a full video analysis run.
type AnalyzeRequest struct {
	CommentLimit int  `json:"comment_limit"`
	UseCache     bool `json:"use_cache"`
}

// AnalyzeResponse is the result of a full video analysis.
type AnalyzeResponse struct {
	Video     *domain.Video       `json:"video"`
	Comments  []domain.Comment    `json:"comments"`
	Summary   domain.VideoSummary `json:"summary"`
	FromCache bool                `json:"from_cache"`
}

// AnalyzeVideo handles POST /api/v1/videos/:video_id/analyze.
func (h *Handler) AnalyzeVideo(c *gin.Context) {
	videoID := c.Param("video_id")

	req := AnalyzeRequest{CommentLimit: 10, UseCache: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("invalid analyze request", logger.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.CommentLimit < 1 {
		req.CommentLimit = 10
	}

	result, err := h.processor.ProcessVideo(c.Request.Context(), videoID, req.CommentLimit, req.UseCache)
	if err != nil {
		h.logger.Error("video analysis failed",
			logger.String("video_id", videoID),
			logger.Error(err),
		)
		c.JSON(fetchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Video:     result.Video,
		Comments:  result.Comments,
		Summary:   result.Summary,
		FromCache: result.FromCache,
	})
}

// GetSummary handles GET /api/v1/videos/:video_id/summary.
func (h *Handler) GetSummary(c *gin.Context) {
	videoID := c.Param("video_id")

	summary, err := h.summaries.Get(c.Request.Context(), videoID)
	if err != nil {
		h.logger.Error("summary lookup failed",
			logger.String("video_id", videoID),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "summary not found"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// BackendsHealth handles GET /api/v1/backends/health.
func (h *Handler) BackendsHealth(c *gin.Context) {
	h.registry.EnsureLoaded(c.Request.Context())

	statuses := h.registry.Status()
	code := http.StatusOK
	if !h.registry.AnyAvailable() {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"backends":  statuses,
		"available": h.registry.AnyAvailable(),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReadyCheck handles GET /ready. The service is ready once at least one
// model backend has loaded, or immediately in rules-only mode.
func (h *Handler) ReadyCheck(c *gin.Context) {
	h.registry.EnsureLoaded(c.Request.Context())
	if !h.registry.AnyAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no backends available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// fetchErrorStatus maps fetch sentinel errors to HTTP status codes.
func fetchErrorStatus(err error) int {
	switch {
	case errors.Is(err, fetch.ErrVideoNotFound):
		return http.StatusNotFound
	case errors.Is(err, fetch.ErrCommentsDisabled):
		return http.StatusUnprocessableEntity
	case errors.Is(err, fetch.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, fetch.ErrAuthentication):
		return http.StatusBadGateway
	case errors.Is(err, pipeline.ErrNoBackendsAvailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
