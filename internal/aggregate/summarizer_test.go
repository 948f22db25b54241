package aggregate

import (
	"testing"
	"time"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
)

func withSentiment(p, n, neu float64) domain.Comment {
	return domain.Comment{
		Sentiment: &domain.SentimentScores{Positive: p, Negative: n, Neutral: neu},
	}
}

func TestSummarizeAllPositive(t *testing.T) {
	comments := make([]domain.Comment, 10)
	for i := range comments {
		comments[i] = withSentiment(0.9, 0.05, 0.05)
	}

	summary := Summarize("vid-1", comments)

	if summary.VideoID != "vid-1" {
		t.Errorf("video id = %q", summary.VideoID)
	}
	if summary.TotalComments != 10 || summary.PositiveCount != 10 {
		t.Errorf("counts = %d total, %d positive, want 10/10", summary.TotalComments, summary.PositiveCount)
	}
	if summary.PositiveRatio != 1.0 || summary.NegativeRatio != 0.0 {
		t.Errorf("ratios = %f/%f, want 1.0/0.0", summary.PositiveRatio, summary.NegativeRatio)
	}
	if summary.PositiveScore != 0.9 || summary.NegativeScore != 0.05 || summary.NeutralScore != 0.05 {
		t.Errorf("scores = %f/%f/%f", summary.PositiveScore, summary.NegativeScore, summary.NeutralScore)
	}
}

func TestSummarizeMixed(t *testing.T) {
	comments := []domain.Comment{
		withSentiment(0.8, 0.1, 0.1),  // positive
		withSentiment(0.1, 0.8, 0.1),  // negative
		withSentiment(0.2, 0.2, 0.6),  // neutral-dominant counts as other
		withSentiment(0.4, 0.4, 0.2),  // tie counts as other
		{},                            // unclassified counts as other
	}

	summary := Summarize("vid-2", comments)

	if summary.TotalComments != 5 {
		t.Fatalf("total = %d, want 5", summary.TotalComments)
	}
	if summary.PositiveCount != 1 || summary.NegativeCount != 1 || summary.OtherCount != 3 {
		t.Errorf("counts = %d/%d/%d, want 1/1/3",
			summary.PositiveCount, summary.NegativeCount, summary.OtherCount)
	}
	if summary.PositiveCount+summary.NegativeCount+summary.OtherCount != summary.TotalComments {
		t.Error("bucket counts do not add up to total")
	}
	if summary.PositiveRatio != 0.2 || summary.NegativeRatio != 0.2 {
		t.Errorf("ratios = %f/%f, want 0.2/0.2", summary.PositiveRatio, summary.NegativeRatio)
	}

	// Unclassified comments contribute zero mass but still divide.
	if summary.PositiveScore != 0.3 {
		t.Errorf("positive score = %f, want 0.3", summary.PositiveScore)
	}
}

func TestSummarizeRoundsToFourDecimals(t *testing.T) {
	comments := []domain.Comment{
		withSentiment(0.8, 0.1, 0.1),
		withSentiment(0.1, 0.8, 0.1),
		withSentiment(0.7, 0.2, 0.1),
	}

	summary := Summarize("vid-3", comments)

	if summary.PositiveRatio != 0.6667 {
		t.Errorf("positive ratio = %v, want 0.6667", summary.PositiveRatio)
	}
	if summary.NegativeRatio != 0.3333 {
		t.Errorf("negative ratio = %v, want 0.3333", summary.NegativeRatio)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	before := time.Now().UTC()
	summary := Summarize("vid-4", nil)

	if summary.TotalComments != 0 || summary.PositiveCount != 0 || summary.OtherCount != 0 {
		t.Errorf("expected all-zero counts, got %+v", summary)
	}
	if summary.PositiveRatio != 0 || summary.PositiveScore != 0 {
		t.Errorf("expected zero ratios and scores, got %+v", summary)
	}
	if summary.AnalyzedAt.Before(before) {
		t.Error("expected a fresh timestamp")
	}
}
