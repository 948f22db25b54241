// Package cache stores analyzed video data as per-video JSON files.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

// Document is the cached analysis for one video: its metadata with the
// classified comments and the aggregated summary inline.
type Document struct {
	domain.Video
	Comments []domain.Comment     `json:"comments"`
	Summary  *domain.VideoSummary `json:"summary,omitempty"`
}

// Store reads and writes cache documents under a single directory,
// one <video_id>.json per video.
type Store struct {
	dir       string
	telemetry *telemetry.Provider
	logger    logger.Logger
}

// NewStore creates a cache store rooted at dir.
func NewStore(dir string, tel *telemetry.Provider, log logger.Logger) *Store {
	return &Store{dir: dir, telemetry: tel, logger: log}
}

// Save writes the document for a video, creating the cache directory if
// needed.
func (s *Store) Save(ctx context.Context, videoID string, doc *Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache document: %w", err)
	}

	path := s.path(videoID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	s.logger.Info("cache document saved", logger.String("path", path))
	return nil
}

// Load returns the cached document for a video. A missing or corrupted
// file is a cache miss, not an error.
func (s *Store) Load(ctx context.Context, videoID string) (*Document, error) {
	path := s.path(videoID)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.telemetry.RecordCacheMiss(ctx)
			return nil, nil
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("cache file corrupted, ignoring",
			logger.String("path", path),
			logger.Error(err),
		)
		s.telemetry.RecordCacheMiss(ctx)
		return nil, nil
	}

	s.telemetry.RecordCacheHit(ctx)
	s.logger.Info("cache document loaded", logger.String("path", path))
	return &doc, nil
}

func (s *Store) path(videoID string) string {
	return filepath.Join(s.dir, videoID+".json")
}
