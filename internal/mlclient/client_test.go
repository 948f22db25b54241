package mlclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/score" {
			t.Errorf("expected /score, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		var req struct {
			Text      string `json:"text"`
			MaxTokens int    `json:"max_tokens"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Text != "great video" {
			t.Errorf("unexpected text %q", req.Text)
		}
		if req.MaxTokens != 128 {
			t.Errorf("unexpected max_tokens %d", req.MaxTokens)
		}

		response := ScoreResponse{
			Scores:           []float64{0.1, 0.7, 0.2},
			ProcessingTimeMs: 12,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	scores, err := client.Score(context.Background(), "great video", 128)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 3 || scores[1] != 0.7 {
		t.Errorf("unexpected scores %v", scores)
	}
}

func TestClientScoreNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Score(context.Background(), "text", 128)

	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestClientHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected /health, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model_version":"2025-06-01-ja-v2","labels":["negative","neutral","positive"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	info, err := client.Health(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ModelVersion != "2025-06-01-ja-v2" {
		t.Errorf("unexpected model version %q", info.ModelVersion)
	}
	if len(info.Labels) != 3 || info.Labels[0] != "negative" {
		t.Errorf("unexpected labels %v", info.Labels)
	}
}

func TestClientHealthUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Health(context.Background())

	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClientHealthUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Health(context.Background())

	if err == nil {
		t.Fatal("expected error for unhealthy sidecar")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Error("reachable but unhealthy should not be ErrUnavailable")
	}
}
