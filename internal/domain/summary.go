package domain

import "time"

// VideoSummary aggregates per-comment sentiment for one video.
//
// Invariants: PositiveCount + NegativeCount + OtherCount == TotalComments;
// ratios are counts divided by total (0 when total is 0), rounded to four
// decimals; scores are slot averages rounded to four decimals.
type VideoSummary struct {
	VideoID       string `json:"video_id" db:"video_id"`
	TotalComments int    `json:"total_comments" db:"total_comments"`

	PositiveCount int     `json:"positive_count" db:"positive_count"`
	NegativeCount int     `json:"negative_count" db:"negative_count"`
	OtherCount    int     `json:"other_count" db:"other_count"`
	PositiveRatio float64 `json:"positive_ratio" db:"positive_ratio"`
	NegativeRatio float64 `json:"negative_ratio" db:"negative_ratio"`

	// Average slot scores, kept for display compatibility.
	PositiveScore float64 `json:"positive_score" db:"positive_score"`
	NegativeScore float64 `json:"negative_score" db:"negative_score"`
	NeutralScore  float64 `json:"neutral_score" db:"neutral_score"`

	AnalyzedAt time.Time `json:"analyzed_at" db:"analyzed_at"`
}
