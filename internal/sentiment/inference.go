package sentiment

import (
	"context"
	"time"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

// Fixed fallback distributions used when no backend can score a text.
var (
	fallbackPositive = domain.SentimentScores{Positive: 0.6, Negative: 0.15, Neutral: 0.25}
	fallbackNegative = domain.SentimentScores{Positive: 0.15, Negative: 0.6, Neutral: 0.25}
)

// Engine scores text with the backends registered for its language
// branch. The Japanese branch is an unweighted ensemble of two models;
// everything else goes to the multilingual model.
type Engine struct {
	registry  *Registry
	matcher   *Matcher
	telemetry *telemetry.Provider
	logger    logger.Logger
}

// NewEngine creates an inference engine.
func NewEngine(registry *Registry, matcher *Matcher, tel *telemetry.Provider, log logger.Logger) *Engine {
	return &Engine{
		registry:  registry,
		matcher:   matcher,
		telemetry: tel,
		logger:    log,
	}
}

// Infer scores text for the given language branch. Backend failures
// degrade gracefully: surviving ensemble members still count, and when
// every backend for the branch fails the lexicon vote picks a fixed
// fallback distribution. Infer never returns an error.
func (e *Engine) Infer(ctx context.Context, text string, lang domain.Language) domain.SentimentScores {
	e.registry.EnsureLoaded(ctx)

	var results []domain.SentimentScores
	for _, backend := range e.registry.ForLanguage(lang) {
		start := time.Now()
		scores, err := backend.Score(ctx, text)
		e.telemetry.RecordBackendRequest(ctx, string(backend.ID), err == nil, time.Since(start))
		if err != nil {
			e.logger.Warn("backend scoring failed",
				logger.String("backend", string(backend.ID)),
				logger.Error(err),
			)
			continue
		}
		results = append(results, scores)
	}

	if len(results) == 0 {
		return e.Fallback(text)
	}
	return meanScores(results)
}

// Fallback converts the binary lexicon vote into a fixed distribution.
func (e *Engine) Fallback(text string) domain.SentimentScores {
	if e.matcher.Vote(text) {
		return fallbackPositive
	}
	return fallbackNegative
}

// meanScores is the unweighted ensemble average. Binary members carry
// neutral 0, so they dilute the neutral mass of three-class members.
func meanScores(results []domain.SentimentScores) domain.SentimentScores {
	var sum domain.SentimentScores
	for _, r := range results {
		sum.Positive += r.Positive
		sum.Negative += r.Negative
		sum.Neutral += r.Neutral
	}
	n := float64(len(results))
	return domain.SentimentScores{
		Positive: sum.Positive / n,
		Negative: sum.Negative / n,
		Neutral:  sum.Neutral / n,
	}
}
