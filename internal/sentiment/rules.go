package sentiment

import (
	"context"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

// Adjustment magnitudes. Accumulated adjustments are clamped to
// maxAdjustment before application.
const (
	strongAdjustment = 0.25
	weakAdjustment   = 0.15
	ironyAdjustment  = 0.20
	maxAdjustment    = 0.3
)

// Adjuster corrects model scores with the rule lexicon. Comment text is
// full of sarcasm, rhetorical questions, and negated praise that the
// models miss.
type Adjuster struct {
	matcher   *Matcher
	telemetry *telemetry.Provider
	logger    logger.Logger
}

// NewAdjuster creates an adjuster sharing the given matcher.
func NewAdjuster(matcher *Matcher, tel *telemetry.Provider, log logger.Logger) *Adjuster {
	return &Adjuster{matcher: matcher, telemetry: tel, logger: log}
}

// Adjust applies rule corrections to scores and returns the corrected
// distribution. The input is not mutated and calling twice with the
// same arguments gives the same result.
func (a *Adjuster) Adjust(ctx context.Context, text string, scores domain.SentimentScores) domain.SentimentScores {
	match := a.matcher.Analyze(text)

	var posAdj, negAdj float64
	var applied []string

	switch {
	case match.NegativeHits >= 2:
		negAdj += strongAdjustment
		posAdj -= strongAdjustment
		applied = append(applied, "strong-negative")
	case match.NegativeHits == 1:
		negAdj += weakAdjustment
		posAdj -= weakAdjustment
		applied = append(applied, "negative")
	}

	if match.Sarcasm {
		negAdj += ironyAdjustment
		posAdj -= ironyAdjustment
		applied = append(applied, "sarcasm")
	}

	if match.Rhetorical {
		negAdj += ironyAdjustment
		posAdj -= ironyAdjustment
		applied = append(applied, "rhetorical")
	}

	// Negated praise outranks plain praise: 面白くない is negative no
	// matter how many positive patterns fired.
	switch {
	case match.PositiveHits >= 1 && match.Negation:
		negAdj += ironyAdjustment
		posAdj -= ironyAdjustment
		applied = append(applied, "negated-positive")
	case match.PositiveHits >= 2:
		posAdj += strongAdjustment
		negAdj -= strongAdjustment
		applied = append(applied, "strong-positive")
	case match.PositiveHits == 1:
		posAdj += weakAdjustment
		negAdj -= weakAdjustment
		applied = append(applied, "positive")
	}

	negAdj = clamp(negAdj, -maxAdjustment, maxAdjustment)
	posAdj = clamp(posAdj, -maxAdjustment, maxAdjustment)

	corrected := scores
	corrected.Negative = clamp(scores.Negative+negAdj, 0, 1)
	corrected.Positive = clamp(scores.Positive+posAdj, 0, 1)
	corrected.Neutral = clamp(scores.Neutral, 0, 1)

	total := corrected.Sum()
	if total > 0 {
		corrected.Positive /= total
		corrected.Negative /= total
		corrected.Neutral /= total
	} else {
		corrected.Positive, corrected.Negative, corrected.Neutral = 0, 0, 0
	}

	if len(applied) > 0 {
		for _, rule := range applied {
			a.telemetry.RecordRuleAdjustment(ctx, rule)
		}
		a.logger.Info("rule adjustment applied",
			logger.Strings("rules", applied),
			logger.Float64("positive_adjustment", posAdj),
			logger.Float64("negative_adjustment", negAdj),
			logger.Float64("positive", corrected.Positive),
			logger.Float64("negative", corrected.Negative),
			logger.Float64("neutral", corrected.Neutral),
		)
	}

	return corrected
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
