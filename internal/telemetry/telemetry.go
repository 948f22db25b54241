// Package telemetry provides OpenTelemetry instrumentation for the
// sentiment service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "comment-sentiment"

// Metrics holds all sentiment service Prometheus metrics
type Metrics struct {
	// Classification metrics
	CommentsClassified     *prometheus.CounterVec
	CommentsFailed         *prometheus.CounterVec
	ClassificationDuration *prometheus.HistogramVec
	BatchSize              prometheus.Histogram

	// Rule layer metrics
	RuleMatchDuration prometheus.Histogram
	RuleAdjustments   *prometheus.CounterVec

	// Backend metrics
	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec

	// Language routing distribution (ja vs other vs unknown)
	LanguageTotal *prometheus.CounterVec

	// Fetch metrics
	FetchRequests  *prometheus.CounterVec
	QuotaExhausted prometheus.Counter

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Processor metrics
	VideosProcessed prometheus.Counter
	VideosFailed    prometheus.Counter
	ActiveWorkers   prometheus.Gauge
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	metrics := initMetrics()
	tracer := otel.Tracer(serviceName)

	return &Provider{
		Tracer:  tracer,
		Metrics: metrics,
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initClassificationMetrics(m)
	initRuleMetrics(m)
	initBackendMetrics(m)
	initFetchMetrics(m)
	initCacheMetrics(m)
	initProcessorMetrics(m)
	return m
}

func initClassificationMetrics(m *Metrics) {
	m.CommentsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_comments_classified_total",
		Help: "Total comments successfully classified",
	}, []string{"language"})

	m.CommentsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_comments_failed_total",
		Help: "Total comments that failed classification",
	}, []string{"reason"})

	m.ClassificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sentiment_classification_duration_seconds",
		Help:    "Time to classify a single comment",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"language"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentiment_batch_size",
		Help:    "Number of comments per batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.LanguageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_language_total",
		Help: "Total comments routed by language branch (ja, other, unknown)",
	}, []string{"language"})
}

func initRuleMetrics(m *Metrics) {
	m.RuleMatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentiment_rule_match_duration_seconds",
		Help:    "Time spent in lexicon matching (Aho-Corasick)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.RuleAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_rule_adjustments_total",
		Help: "Total rule adjustments applied by rule kind",
	}, []string{"rule"})
}

func initBackendMetrics(m *Metrics) {
	m.BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_backend_requests_total",
		Help: "Total model sidecar requests by backend and outcome",
	}, []string{"backend", "status"})

	m.BackendLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sentiment_backend_latency_seconds",
		Help:    "Model sidecar scoring latency",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"backend"})
}

func initFetchMetrics(m *Metrics) {
	m.FetchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_fetch_requests_total",
		Help: "Total YouTube API requests by endpoint and outcome",
	}, []string{"endpoint", "status"})

	m.QuotaExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_fetch_quota_exhausted_total",
		Help: "Total requests rejected for exhausted API quota",
	})
}

func initCacheMetrics(m *Metrics) {
	m.CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_cache_hits_total",
		Help: "Total analysis cache hits",
	})

	m.CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_cache_misses_total",
		Help: "Total analysis cache misses",
	})
}

func initProcessorMetrics(m *Metrics) {
	m.VideosProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_videos_processed_total",
		Help: "Total videos analyzed end to end",
	})

	m.VideosFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_videos_failed_total",
		Help: "Total videos that failed analysis",
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sentiment_active_workers",
		Help: "Currently active classification workers",
	})
}

// RecordClassification records metrics for a single classification
func (p *Provider) RecordClassification(ctx context.Context, language string, success bool, duration time.Duration) {
	if success {
		p.Metrics.CommentsClassified.WithLabelValues(language).Inc()
	}
	p.Metrics.ClassificationDuration.WithLabelValues(language).Observe(duration.Seconds())
}

// RecordClassificationFailure records a failed classification with a reason code
func (p *Provider) RecordClassificationFailure(ctx context.Context, reason string) {
	p.Metrics.CommentsFailed.WithLabelValues(reason).Inc()
}

// RecordLanguage increments the language routing counter
func (p *Provider) RecordLanguage(ctx context.Context, language string) {
	label := language
	if label == "" {
		label = "unknown"
	}
	p.Metrics.LanguageTotal.WithLabelValues(label).Inc()
}

// RecordRuleMatch records lexicon matching duration
func (p *Provider) RecordRuleMatch(ctx context.Context, duration time.Duration) {
	p.Metrics.RuleMatchDuration.Observe(duration.Seconds())
}

// RecordRuleAdjustment records one applied rule adjustment
func (p *Provider) RecordRuleAdjustment(ctx context.Context, rule string) {
	p.Metrics.RuleAdjustments.WithLabelValues(rule).Inc()
}

// RecordBackendRequest records a sidecar scoring request
func (p *Provider) RecordBackendRequest(ctx context.Context, backend string, success bool, duration time.Duration) {
	status := "ok"
	if !success {
		status = "error"
	}
	p.Metrics.BackendRequests.WithLabelValues(backend, status).Inc()
	p.Metrics.BackendLatency.WithLabelValues(backend).Observe(duration.Seconds())
}

// RecordFetch records a YouTube API request
func (p *Provider) RecordFetch(ctx context.Context, endpoint string, status string) {
	p.Metrics.FetchRequests.WithLabelValues(endpoint, status).Inc()
}

// RecordQuotaExhausted increments the quota exhaustion counter
func (p *Provider) RecordQuotaExhausted(ctx context.Context) {
	p.Metrics.QuotaExhausted.Inc()
}

// RecordCacheHit increments the cache hit counter
func (p *Provider) RecordCacheHit(ctx context.Context) {
	p.Metrics.CacheHits.Inc()
}

// RecordCacheMiss increments the cache miss counter
func (p *Provider) RecordCacheMiss(ctx context.Context) {
	p.Metrics.CacheMisses.Inc()
}

// RecordVideoProcessed records one completed video analysis
func (p *Provider) RecordVideoProcessed(ctx context.Context, success bool) {
	if success {
		p.Metrics.VideosProcessed.Inc()
		return
	}
	p.Metrics.VideosFailed.Inc()
}

// RecordBatchSize records the size of a classified batch
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// SetActiveWorkers sets the current active worker count
func (p *Provider) SetActiveWorkers(count int) {
	p.Metrics.ActiveWorkers.Set(float64(count))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
