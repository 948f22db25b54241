package bootstrap

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/comment-sentiment/internal/api"
	"github.com/jonesrussell/comment-sentiment/internal/cache"
	"github.com/jonesrussell/comment-sentiment/internal/config"
	"github.com/jonesrussell/comment-sentiment/internal/database"
	"github.com/jonesrussell/comment-sentiment/internal/fetch"
	"github.com/jonesrussell/comment-sentiment/internal/language"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/pipeline"
	"github.com/jonesrussell/comment-sentiment/internal/processor"
	"github.com/jonesrussell/comment-sentiment/internal/sentiment"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

const (
	shutdownTimeout         = 10 * time.Second
	defaultBatchConcurrency = 2
)

// Components holds everything the entrypoints need beyond the HTTP
// server itself.
type Components struct {
	Config    *config.Config
	DB        *sqlx.DB
	Telemetry *telemetry.Provider
	Registry  *sentiment.Registry
	Pipeline  *pipeline.Pipeline
	Processor *processor.Processor
	Batch     *processor.BatchProcessor
	Summaries *database.SummariesRepository
}

// NewComponents builds the full analysis stack: database, optional
// search indexing, the classification pipeline, and the video
// processor.
func NewComponents(cfg *config.Config, log logger.Logger) (*Components, error) {
	tel := telemetry.NewProvider()

	dbComps, err := SetupDatabase(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	esStorage := SetupElasticsearch(cfg, log)

	matcher := sentiment.NewMatcher()
	registry := BuildRegistry(cfg, log)
	engine := sentiment.NewEngine(registry, matcher, tel, log)
	adjuster := sentiment.NewAdjuster(matcher, tel, log)
	router := language.NewRouter(log)

	pipe := pipeline.New(router, engine, adjuster, registry, tel, log, pipeline.Options{
		RulesOnlyFallback: cfg.Classification.FallbackToRulesOnly,
		Concurrency:       cfg.Classification.Concurrency,
	})

	fetcher := fetch.NewClient(cfg.Fetch.APIKey, fetch.Options{
		BaseURL:           cfg.Fetch.BaseURL,
		MaxResults:        cfg.Fetch.MaxResults,
		FetchMultiplier:   cfg.Fetch.FetchMultiplier,
		RequestsPerSecond: cfg.Fetch.RequestsPerSec,
	}, tel, log)

	var cacheStore processor.CacheStore
	if cfg.Cache.Enabled {
		cacheStore = cache.NewStore(cfg.Cache.Dir, tel, log)
	}

	var indexer processor.Indexer
	if esStorage != nil {
		indexer = esStorage
	}

	proc := processor.New(
		fetcher,
		pipe,
		cacheStore,
		dbComps.Videos,
		dbComps.Summaries,
		indexer,
		tel,
		log,
	)
	batch := processor.NewBatchProcessor(proc, defaultBatchConcurrency, log)

	return &Components{
		Config:    cfg,
		DB:        dbComps.DB,
		Telemetry: tel,
		Registry:  registry,
		Pipeline:  pipe,
		Processor: proc,
		Batch:     batch,
		Summaries: dbComps.Summaries,
	}, nil
}

// Close releases held resources.
func (c *Components) Close() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
}

// HTTPComponents holds the components plus the HTTP server.
type HTTPComponents struct {
	*Components
	Server *api.Server
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	comps, err := NewComponents(cfg, log)
	if err != nil {
		return nil, err
	}

	handler := api.NewHandler(comps.Pipeline, comps.Processor, comps.Registry, comps.Summaries, log)

	server := api.NewServer(handler, api.ServerConfig{
		Port:         cfg.Service.Port,
		ReadTimeout:  cfg.Service.ReadTimeout,
		WriteTimeout: cfg.Service.WriteTimeout,
		Debug:        cfg.Service.Debug,
	}, comps.Telemetry, log)

	return &HTTPComponents{Components: comps, Server: server}, nil
}

// HTTPShutdownTimeout returns the timeout for graceful shutdown.
func HTTPShutdownTimeout() time.Duration {
	return shutdownTimeout
}
