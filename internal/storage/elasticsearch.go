// Package storage indexes analysis results into Elasticsearch for
// search and dashboards. Indexing is optional: the service runs fine
// without an Elasticsearch cluster configured.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
)

const summariesIndex = "video_sentiment_summary"

// ElasticsearchStorage indexes classified comments and summaries.
type ElasticsearchStorage struct {
	client        *es.Client
	commentsIndex string
}

// NewElasticsearchStorage creates a new Elasticsearch storage instance
// writing comment documents to the given index.
func NewElasticsearchStorage(client *es.Client, commentsIndex string) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client:        client,
		commentsIndex: commentsIndex,
	}
}

// indexedComment is the comment document shape with its video context.
type indexedComment struct {
	domain.Comment
	VideoID   string    `json:"video_id"`
	IndexedAt time.Time `json:"indexed_at"`
}

// BulkIndexComments indexes classified comments for one video. Comment
// IDs double as document IDs, so re-analysis overwrites in place.
func (s *ElasticsearchStorage) BulkIndexComments(ctx context.Context, videoID string, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	now := time.Now().UTC()
	var buf bytes.Buffer
	for _, comment := range comments {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": s.commentsIndex,
				"_id":    comment.CommentID,
			},
		}

		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}

		doc := indexedComment{Comment: comment, VideoID: videoID, IndexedAt: now}
		if err := json.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode comment: %w", err)
		}
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("bulk request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk indexing error: %s", res.String())
	}

	return nil
}

// IndexSummary indexes the aggregated summary for a video, overwriting
// any previous run.
func (s *ElasticsearchStorage) IndexSummary(ctx context.Context, summary *domain.VideoSummary) error {
	docBytes, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	res, err := s.client.Index(
		summariesIndex,
		bytes.NewReader(docBytes),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithDocumentID(summary.VideoID),
	)
	if err != nil {
		return fmt.Errorf("failed to index summary: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing summary: %s", res.String())
	}

	return nil
}

// TestConnection tests the connection to Elasticsearch.
func (s *ElasticsearchStorage) TestConnection(ctx context.Context) error {
	res, err := s.client.Info()
	if err != nil {
		return fmt.Errorf("failed to connect to Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error response from Elasticsearch: %s", res.String())
	}

	return nil
}
