// Package mltransport provides shared HTTP transport for model sidecar score and health.
package mltransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

// ScoreRequest is the common request body for POST /score.
type ScoreRequest struct {
	Text      string `json:"text"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

// healthResponse is the JSON shape returned by GET /health. Labels list
// the output head in model order; model_version is optional.
type healthResponse struct {
	ModelVersion string   `json:"model_version"`
	Labels       []string `json:"labels"`
}

// DoScore sends POST /score to baseURL with req, decoding the response into respPtr.
// respPtr must be a pointer to a struct that matches the sidecar response (e.g. *ScoreResponse).
func DoScore(ctx context.Context, baseURL string, req *ScoreRequest, respPtr any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: defaultTimeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model sidecar returned %d", resp.StatusCode)
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(respPtr); decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	return nil
}

// DoHealth calls GET /health at baseURL and returns reachable, latencyMs,
// model_version, the sidecar's label order, and any error.
func DoHealth(ctx context.Context, baseURL string) (reachable bool, latencyMs int64, modelVersion string, labels []string, err error) {
	start := time.Now()

	httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", http.NoBody)
	if reqErr != nil {
		return false, 0, "", nil, fmt.Errorf("create request: %w", reqErr)
	}

	client := &http.Client{Timeout: defaultTimeout}
	resp, doErr := client.Do(httpReq)
	latencyMs = time.Since(start).Milliseconds()
	if doErr != nil {
		return false, latencyMs, "", nil, fmt.Errorf("sidecar unreachable: %w", doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	reachable = true
	if resp.StatusCode != http.StatusOK {
		return reachable, latencyMs, "", nil, fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}

	var healthResp healthResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&healthResp); decodeErr == nil {
		modelVersion = healthResp.ModelVersion
		labels = healthResp.Labels
	}
	return reachable, latencyMs, modelVersion, labels, nil
}
