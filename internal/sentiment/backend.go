// Package sentiment implements model-backed scoring with rule-based
// correction.
package sentiment

import (
	"context"
	"strings"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
)

// BackendID identifies one model sidecar.
type BackendID string

const (
	BackendJapanese1    BackendID = "ja-1"
	BackendJapanese2    BackendID = "ja-2"
	BackendMultilingual BackendID = "multi"
)

// Scorer is the sidecar surface a backend needs. *mlclient.Client
// satisfies it.
type Scorer interface {
	Score(ctx context.Context, text string, maxTokens int) ([]float64, error)
}

// Backend is a loaded model sidecar with its reported label order.
type Backend struct {
	ID           BackendID
	ModelVersion string
	Labels       []string

	scorer    Scorer
	maxTokens int
}

// NewBackend wraps a scorer with the label order its health probe
// reported.
func NewBackend(id BackendID, scorer Scorer, labels []string, modelVersion string, maxTokens int) *Backend {
	return &Backend{
		ID:           id,
		ModelVersion: modelVersion,
		Labels:       labels,
		scorer:       scorer,
		maxTokens:    maxTokens,
	}
}

// Score runs the sidecar and canonicalizes its raw vector into the
// positive/negative/neutral distribution.
func (b *Backend) Score(ctx context.Context, text string) (domain.SentimentScores, error) {
	raw, err := b.scorer.Score(ctx, text, b.maxTokens)
	if err != nil {
		return domain.SentimentScores{}, err
	}
	return canonicalize(raw, b.Labels), nil
}

// canonicalize maps a raw score vector into canonical slot order using
// the sidecar's label metadata. Three-class heads put negative first
// only when they say so; binary heads get neutral 0; anything else is
// an unknown shape and collapses to the uniform distribution.
func canonicalize(raw []float64, labels []string) domain.SentimentScores {
	switch len(raw) {
	case 3:
		if len(labels) > 0 && labels[0] == "negative" {
			// 0=negative, 1=neutral, 2=positive
			return domain.SentimentScores{
				Positive: raw[2],
				Negative: raw[0],
				Neutral:  raw[1],
			}
		}
		return domain.SentimentScores{
			Positive: raw[1],
			Negative: raw[0],
			Neutral:  raw[2],
		}
	case 2:
		if len(labels) > 0 && (labels[0] == "ポジティブ" || strings.ToLower(labels[0]) == "positive") {
			return domain.SentimentScores{Positive: raw[0], Negative: raw[1]}
		}
		return domain.SentimentScores{Positive: raw[1], Negative: raw[0]}
	default:
		return domain.SentimentScores{Positive: 0.33, Negative: 0.33, Neutral: 0.34}
	}
}
