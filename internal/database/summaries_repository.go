package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
)

// SummariesRepository handles persistence of per-video sentiment
// summaries. Each video keeps only its latest summary.
type SummariesRepository struct {
	db *sqlx.DB
}

// NewSummariesRepository creates a summaries repository.
func NewSummariesRepository(db *sqlx.DB) *SummariesRepository {
	return &SummariesRepository{db: db}
}

// Upsert replaces the summary for a video.
func (r *SummariesRepository) Upsert(ctx context.Context, summary *domain.VideoSummary) error {
	query := `
		INSERT INTO video_comment_summary (
			video_id, total_comments, positive_count, negative_count, other_count,
			positive_ratio, negative_ratio,
			positive_score, negative_score, neutral_score, analyzed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (video_id) DO UPDATE SET
			total_comments = EXCLUDED.total_comments,
			positive_count = EXCLUDED.positive_count,
			negative_count = EXCLUDED.negative_count,
			other_count = EXCLUDED.other_count,
			positive_ratio = EXCLUDED.positive_ratio,
			negative_ratio = EXCLUDED.negative_ratio,
			positive_score = EXCLUDED.positive_score,
			negative_score = EXCLUDED.negative_score,
			neutral_score = EXCLUDED.neutral_score,
			analyzed_at = EXCLUDED.analyzed_at
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		summary.VideoID,
		summary.TotalComments,
		summary.PositiveCount,
		summary.NegativeCount,
		summary.OtherCount,
		summary.PositiveRatio,
		summary.NegativeRatio,
		summary.PositiveScore,
		summary.NegativeScore,
		summary.NeutralScore,
		summary.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert summary for %s: %w", summary.VideoID, err)
	}
	return nil
}

// Get returns the summary for a video, or nil if none exists.
func (r *SummariesRepository) Get(ctx context.Context, videoID string) (*domain.VideoSummary, error) {
	query := `
		SELECT video_id, total_comments, positive_count, negative_count, other_count,
		       positive_ratio, negative_ratio,
		       positive_score, negative_score, neutral_score, analyzed_at
		FROM video_comment_summary
		WHERE video_id = $1
	`

	var summary domain.VideoSummary
	if err := r.db.GetContext(ctx, &summary, query, videoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary for %s: %w", videoID, err)
	}
	return &summary, nil
}
