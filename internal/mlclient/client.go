// Package mlclient is an HTTP client for sentiment model sidecars.
package mlclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonesrussell/comment-sentiment/internal/mltransport"
)

// ErrUnavailable indicates the model sidecar is unreachable.
var ErrUnavailable = errors.New("model sidecar unavailable")

// Client is an HTTP client for a single sentiment scoring sidecar.
type Client struct {
	baseURL string
}

// ScoreResponse is the response body from /score. Scores follow the
// label order the sidecar reports on /health.
type ScoreResponse struct {
	Scores           []float64 `json:"scores"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
}

// HealthInfo is the decoded result of a /health probe.
type HealthInfo struct {
	ModelVersion string
	Labels       []string
	LatencyMs    int64
}

// NewClient creates a new sidecar client.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// Score sends text to the sidecar and returns its raw score vector.
func (c *Client) Score(ctx context.Context, text string, maxTokens int) ([]float64, error) {
	req := &mltransport.ScoreRequest{Text: text, MaxTokens: maxTokens}
	var result ScoreResponse
	if err := mltransport.DoScore(ctx, c.baseURL, req, &result); err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	return result.Scores, nil
}

// Health probes the sidecar and returns its model version and label order.
func (c *Client) Health(ctx context.Context) (*HealthInfo, error) {
	reachable, latencyMs, modelVersion, labels, err := mltransport.DoHealth(ctx, c.baseURL)
	if err != nil {
		if !reachable {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, err
	}
	return &HealthInfo{
		ModelVersion: modelVersion,
		Labels:       labels,
		LatencyMs:    latencyMs,
	}, nil
}
