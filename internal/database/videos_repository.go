package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
)

const maxTitleLength = 255

// VideosRepository handles persistence of video metadata.
type VideosRepository struct {
	db *sqlx.DB
}

// NewVideosRepository creates a videos repository.
func NewVideosRepository(db *sqlx.DB) *VideosRepository {
	return &VideosRepository{db: db}
}

// Upsert inserts or refreshes a video row. Mutable statistics and the
// title are overwritten on conflict.
func (r *VideosRepository) Upsert(ctx context.Context, video *domain.Video) error {
	query := `
		INSERT INTO videos (
			video_id, title, channel_id, channel_title,
			published_at, view_count, like_count, comment_count, fetched_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (video_id) DO UPDATE SET
			title = EXCLUDED.title,
			channel_title = EXCLUDED.channel_title,
			view_count = EXCLUDED.view_count,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			fetched_at = EXCLUDED.fetched_at
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		video.VideoID,
		truncate(video.Title, maxTitleLength),
		video.ChannelID,
		truncate(video.ChannelTitle, maxTitleLength),
		video.PublishedAt,
		video.ViewCount,
		video.LikeCount,
		video.CommentCount,
		video.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert video %s: %w", video.VideoID, err)
	}
	return nil
}

// Get returns a video by ID, or nil if no row exists.
func (r *VideosRepository) Get(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `
		SELECT video_id, title, channel_id, channel_title,
		       published_at, view_count, like_count, comment_count, fetched_at
		FROM videos
		WHERE video_id = $1
	`

	var video domain.Video
	if err := r.db.GetContext(ctx, &video, query, videoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video %s: %w", videoID, err)
	}
	return &video, nil
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
