// Package processor orchestrates the per-video analysis flow: fetch,
// classify, aggregate, persist.
package processor

import (
	"context"
	"fmt"

	"github.com/jonesrussell/comment-sentiment/internal/aggregate"
	"github.com/jonesrussell/comment-sentiment/internal/cache"
	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

// Fetcher retrieves video data from the upstream API.
type Fetcher interface {
	Video(ctx context.Context, videoID string) (*domain.Video, error)
	Comments(ctx context.Context, videoID string, limit int) ([]domain.Comment, error)
}

// Classifier scores a batch of comments.
type Classifier interface {
	ClassifyBatch(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error)
}

// CacheStore persists per-video analysis documents.
type CacheStore interface {
	Save(ctx context.Context, videoID string, doc *cache.Document) error
	Load(ctx context.Context, videoID string) (*cache.Document, error)
}

// VideoRepository persists video metadata.
type VideoRepository interface {
	Upsert(ctx context.Context, video *domain.Video) error
}

// SummaryRepository persists aggregated summaries.
type SummaryRepository interface {
	Upsert(ctx context.Context, summary *domain.VideoSummary) error
}

// Indexer pushes results into the search cluster. Optional.
type Indexer interface {
	BulkIndexComments(ctx context.Context, videoID string, comments []domain.Comment) error
	IndexSummary(ctx context.Context, summary *domain.VideoSummary) error
}

// Result is the outcome of processing one video.
type Result struct {
	Video     *domain.Video
	Comments  []domain.Comment
	Summary   domain.VideoSummary
	FromCache bool
}

// Processor runs the end-to-end analysis for single videos.
type Processor struct {
	fetcher    Fetcher
	classifier Classifier
	cache      CacheStore
	videos     VideoRepository
	summaries  SummaryRepository
	indexer    Indexer

	telemetry *telemetry.Provider
	logger    logger.Logger
}

// New creates a processor. indexer may be nil when search indexing is
// not configured.
func New(
	fetcher Fetcher,
	classifier Classifier,
	cacheStore CacheStore,
	videos VideoRepository,
	summaries SummaryRepository,
	indexer Indexer,
	tel *telemetry.Provider,
	log logger.Logger,
) *Processor {
	return &Processor{
		fetcher:    fetcher,
		classifier: classifier,
		cache:      cacheStore,
		videos:     videos,
		summaries:  summaries,
		indexer:    indexer,
		telemetry:  tel,
		logger:     log,
	}
}

// ProcessVideo analyzes one video. With useCache set, a previously
// saved document short-circuits the API fetch; cached sentiment data
// that fails validation is reclassified before aggregation.
func (p *Processor) ProcessVideo(ctx context.Context, videoID string, commentLimit int, useCache bool) (*Result, error) {
	p.logger.Info("processing video", logger.String("video_id", videoID))

	if useCache {
		if result, err := p.processFromCache(ctx, videoID); err != nil {
			p.telemetry.RecordVideoProcessed(ctx, false)
			return nil, err
		} else if result != nil {
			p.telemetry.RecordVideoProcessed(ctx, true)
			return result, nil
		}
	}

	result, err := p.processFromAPI(ctx, videoID, commentLimit)
	if err != nil {
		p.telemetry.RecordVideoProcessed(ctx, false)
		return nil, err
	}
	p.telemetry.RecordVideoProcessed(ctx, true)
	return result, nil
}

// processFromCache returns a result built from the cache, or nil on a
// cache miss. A nil cache store behaves as a permanent miss.
func (p *Processor) processFromCache(ctx context.Context, videoID string) (*Result, error) {
	if p.cache == nil {
		return nil, nil
	}
	doc, err := p.cache.Load(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("load cache for %s: %w", videoID, err)
	}
	if doc == nil {
		return nil, nil
	}

	p.logger.Info("using cached data", logger.String("video_id", videoID))

	reclassified := false
	if !sentimentsValid(doc.Comments) {
		p.logger.Warn("cached sentiment data invalid, reclassifying",
			logger.String("video_id", videoID),
		)
		comments, classifyErr := p.classifier.ClassifyBatch(ctx, doc.Comments)
		if classifyErr != nil {
			return nil, fmt.Errorf("reclassify cached comments for %s: %w", videoID, classifyErr)
		}
		doc.Comments = comments
		reclassified = true
	}

	video := doc.Video
	summary, err := p.persist(ctx, &video, doc.Comments)
	if err != nil {
		return nil, err
	}

	if reclassified {
		doc.Summary = &summary
		if saveErr := p.cache.Save(ctx, videoID, doc); saveErr != nil {
			p.logger.Error("failed to update cache", logger.Error(saveErr))
		}
	}

	return &Result{
		Video:     &video,
		Comments:  doc.Comments,
		Summary:   summary,
		FromCache: true,
	}, nil
}

// processFromAPI fetches, classifies, caches, and persists one video.
func (p *Processor) processFromAPI(ctx context.Context, videoID string, commentLimit int) (*Result, error) {
	video, err := p.fetcher.Video(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, err)
	}

	comments, err := p.fetcher.Comments(ctx, videoID, commentLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch comments %s: %w", videoID, err)
	}

	comments, err = p.classifier.ClassifyBatch(ctx, comments)
	if err != nil {
		return nil, fmt.Errorf("classify comments %s: %w", videoID, err)
	}

	summary, err := p.persist(ctx, video, comments)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		doc := &cache.Document{Video: *video, Comments: comments, Summary: &summary}
		if saveErr := p.cache.Save(ctx, videoID, doc); saveErr != nil {
			p.logger.Error("failed to save cache", logger.Error(saveErr))
		}
	}

	return &Result{
		Video:    video,
		Comments: comments,
		Summary:  summary,
	}, nil
}

// persist aggregates and writes the video, summary, and search index.
func (p *Processor) persist(ctx context.Context, video *domain.Video, comments []domain.Comment) (domain.VideoSummary, error) {
	summary := aggregate.Summarize(video.VideoID, comments)

	if err := p.videos.Upsert(ctx, video); err != nil {
		return summary, fmt.Errorf("save video %s: %w", video.VideoID, err)
	}
	if err := p.summaries.Upsert(ctx, &summary); err != nil {
		return summary, fmt.Errorf("save summary %s: %w", video.VideoID, err)
	}

	if p.indexer != nil {
		if err := p.indexer.BulkIndexComments(ctx, video.VideoID, comments); err != nil {
			p.logger.Error("failed to index comments", logger.Error(err))
		}
		if err := p.indexer.IndexSummary(ctx, &summary); err != nil {
			p.logger.Error("failed to index summary", logger.Error(err))
		}
	}

	return summary, nil
}

// sentimentsValid reports whether every comment carries a plausible
// sentiment distribution.
func sentimentsValid(comments []domain.Comment) bool {
	for i := range comments {
		if !comments[i].Sentiment.Valid() {
			return false
		}
	}
	return true
}
