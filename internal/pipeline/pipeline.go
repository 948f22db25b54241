// Package pipeline ties preprocessing, language routing, inference, and
// rule adjustment into the comment classification flow.
package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/language"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/sentiment"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
	"github.com/jonesrussell/comment-sentiment/internal/textutil"
)

// ErrNoBackendsAvailable means every model backend failed to load and
// rules-only fallback is disabled. Batches fail atomically on it.
var ErrNoBackendsAvailable = errors.New("no model backends available")

// Pipeline classifies comments end to end.
type Pipeline struct {
	router    *language.Router
	engine    *sentiment.Engine
	adjuster  *sentiment.Adjuster
	registry  *sentiment.Registry
	telemetry *telemetry.Provider
	logger    logger.Logger

	rulesOnlyFallback bool
	concurrency       int
}

// Options control pipeline behavior.
type Options struct {
	// RulesOnlyFallback classifies with the lexicon alone when every
	// backend failed to load, instead of failing the batch.
	RulesOnlyFallback bool
	// Concurrency is the batch worker count. Values below 1 mean
	// sequential processing.
	Concurrency int
}

// New creates a classification pipeline.
func New(
	router *language.Router,
	engine *sentiment.Engine,
	adjuster *sentiment.Adjuster,
	registry *sentiment.Registry,
	tel *telemetry.Provider,
	log logger.Logger,
	opts Options,
) *Pipeline {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Pipeline{
		router:            router,
		engine:            engine,
		adjuster:          adjuster,
		registry:          registry,
		telemetry:         tel,
		logger:            log,
		rulesOnlyFallback: opts.RulesOnlyFallback,
		concurrency:       opts.Concurrency,
	}
}

// Classify scores a single comment. It returns ErrNoBackendsAvailable
// only when nothing loaded and rules-only fallback is disabled.
func (p *Pipeline) Classify(ctx context.Context, text string) (domain.SentimentScores, error) {
	p.registry.EnsureLoaded(ctx)

	if !p.registry.AnyAvailable() {
		if !p.rulesOnlyFallback {
			p.telemetry.RecordClassificationFailure(ctx, "no_backends")
			return domain.SentimentScores{}, ErrNoBackendsAvailable
		}
		return p.classifyRulesOnly(ctx, text), nil
	}

	return p.classifyOne(ctx, text), nil
}

// ClassifyBatch classifies comments in place and returns them in input
// order. When every backend failed to load the whole batch either runs
// rules-only or fails atomically; there are no partial results.
func (p *Pipeline) ClassifyBatch(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error) {
	p.registry.EnsureLoaded(ctx)
	p.telemetry.RecordBatchSize(len(comments))

	if !p.registry.AnyAvailable() {
		if !p.rulesOnlyFallback {
			p.telemetry.RecordClassificationFailure(ctx, "no_backends")
			return nil, ErrNoBackendsAvailable
		}
		p.logger.Warn("all backends unavailable, classifying with rules only",
			logger.Int("comments", len(comments)),
		)
		for i := range comments {
			scores := p.classifyRulesOnly(ctx, comments[i].Text)
			comments[i].Sentiment = &scores
		}
		return comments, nil
	}

	if p.concurrency <= 1 || len(comments) <= 1 {
		for i := range comments {
			scores := p.classifyOne(ctx, comments[i].Text)
			comments[i].Sentiment = &scores
		}
		return comments, nil
	}

	// Worker pool writes results by index, so output order matches
	// input order regardless of scheduling.
	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				scores := p.classifyOne(ctx, comments[i].Text)
				comments[i].Sentiment = &scores
			}
		}()
	}
	p.telemetry.SetActiveWorkers(p.concurrency)
	for i := range comments {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	p.telemetry.SetActiveWorkers(0)

	return comments, nil
}

// classifyOne runs the full model path for one comment.
func (p *Pipeline) classifyOne(ctx context.Context, text string) domain.SentimentScores {
	start := time.Now()

	processed := textutil.Preprocess(text)
	if processed == "" {
		p.telemetry.RecordLanguage(ctx, string(domain.LanguageUnknown))
		return domain.UniformScores(domain.LanguageUnknown)
	}

	lang := p.router.Route(processed)
	p.telemetry.RecordLanguage(ctx, string(lang))

	scores := p.engine.Infer(ctx, processed, lang)

	ruleStart := time.Now()
	scores = p.adjuster.Adjust(ctx, processed, scores)
	p.telemetry.RecordRuleMatch(ctx, time.Since(ruleStart))
	scores.Language = lang

	p.telemetry.RecordClassification(ctx, string(lang), true, time.Since(start))
	return scores
}

// classifyRulesOnly scores one comment with the lexicon alone.
func (p *Pipeline) classifyRulesOnly(ctx context.Context, text string) domain.SentimentScores {
	processed := textutil.Preprocess(text)
	if processed == "" {
		return domain.UniformScores(domain.LanguageUnknown)
	}

	lang := p.router.Route(processed)
	scores := p.engine.Fallback(processed)
	scores = p.adjuster.Adjust(ctx, processed, scores)
	scores.Language = lang
	return scores
}
