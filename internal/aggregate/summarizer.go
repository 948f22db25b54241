// Package aggregate builds per-video sentiment summaries from
// classified comments.
package aggregate

import (
	"math"
	"time"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
)

// Summarize reduces classified comments into a VideoSummary. Dominance
// requires a strict maximum: any tie, and neutral-dominant comments,
// land in the other bucket. An empty batch yields an all-zero summary
// with a valid timestamp.
func Summarize(videoID string, comments []domain.Comment) domain.VideoSummary {
	summary := domain.VideoSummary{
		VideoID:    videoID,
		AnalyzedAt: time.Now().UTC(),
	}

	var sumPos, sumNeg, sumNeu float64
	for _, c := range comments {
		summary.TotalComments++

		if c.Sentiment == nil {
			summary.OtherCount++
			continue
		}

		sumPos += c.Sentiment.Positive
		sumNeg += c.Sentiment.Negative
		sumNeu += c.Sentiment.Neutral

		switch c.Sentiment.Dominant() {
		case domain.LabelPositive:
			summary.PositiveCount++
		case domain.LabelNegative:
			summary.NegativeCount++
		default:
			summary.OtherCount++
		}
	}

	if summary.TotalComments > 0 {
		total := float64(summary.TotalComments)
		summary.PositiveRatio = round4(float64(summary.PositiveCount) / total)
		summary.NegativeRatio = round4(float64(summary.NegativeCount) / total)
		summary.PositiveScore = round4(sumPos / total)
		summary.NegativeScore = round4(sumNeg / total)
		summary.NeutralScore = round4(sumNeu / total)
	}

	return summary
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
