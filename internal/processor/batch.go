package processor

import (
	"context"
	"sync"
	"time"

	"github.com/jonesrussell/comment-sentiment/internal/logger"
)

// BatchResult summarizes a batch run over multiple videos.
type BatchResult struct {
	Succeeded int
	Failed    int
	Results   []*Result
}

// BatchProcessor runs per-video analysis for many videos in parallel
// using a worker pool. One video failing does not stop the batch.
type BatchProcessor struct {
	processor   *Processor
	concurrency int
	logger      logger.Logger
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(processor *Processor, concurrency int, log logger.Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 2
	}
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
		logger:      log,
	}
}

// Process analyzes each video ID and collects the results.
func (b *BatchProcessor) Process(ctx context.Context, videoIDs []string, commentLimit int, useCache bool) *BatchResult {
	if len(videoIDs) == 0 {
		return &BatchResult{}
	}

	b.logger.Info("starting batch",
		logger.Int("videos", len(videoIDs)),
		logger.Int("concurrency", b.concurrency),
		logger.Int("comment_limit", commentLimit),
		logger.Bool("use_cache", useCache),
	)

	start := time.Now()
	results := make([]*Result, len(videoIDs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				result, err := b.processor.ProcessVideo(ctx, videoIDs[i], commentLimit, useCache)
				if err != nil {
					b.logger.Error("video processing failed",
						logger.String("video_id", videoIDs[i]),
						logger.Error(err),
					)
					continue
				}
				results[i] = result
			}
		}()
	}

	for i := range videoIDs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	batch := &BatchResult{}
	for _, r := range results {
		if r != nil {
			batch.Succeeded++
			batch.Results = append(batch.Results, r)
		} else {
			batch.Failed++
		}
	}

	b.logger.Info("batch complete",
		logger.Int("succeeded", batch.Succeeded),
		logger.Int("failed", batch.Failed),
		logger.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return batch
}
