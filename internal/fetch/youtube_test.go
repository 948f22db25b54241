package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return NewClient("test-key", Options{
		BaseURL:           baseURL,
		MaxResults:        100,
		FetchMultiplier:   2,
		RequestsPerSecond: 1000,
	}, testProvider, logger.NewNop())
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func apiError(status int, reason string) (int, map[string]any) {
	return status, map[string]any{
		"error": map[string]any{
			"errors": []map[string]any{{"reason": reason}},
		},
	}
}

func TestVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Errorf("expected /videos, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("expected api key, got %q", got)
		}
		if got := r.URL.Query().Get("id"); got != "vid123" {
			t.Errorf("expected id vid123, got %q", got)
		}

		writeJSON(t, w, map[string]any{
			"items": []map[string]any{{
				"id": "vid123",
				"snippet": map[string]any{
					"title":        "面白い動画",
					"channelId":    "ch1",
					"channelTitle": "some channel",
					"publishedAt":  "2025-05-01T10:00:00Z",
				},
				"statistics": map[string]any{
					"viewCount":    "12345",
					"likeCount":    "678",
					"commentCount": "90",
				},
			}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	video, err := client.Video(context.Background(), "vid123")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if video.VideoID != "vid123" || video.Title != "面白い動画" {
		t.Errorf("unexpected video %+v", video)
	}
	if video.ViewCount != 12345 || video.LikeCount != 678 || video.CommentCount != 90 {
		t.Errorf("statistics not parsed: %+v", video)
	}
	if video.FetchedAt.IsZero() {
		t.Error("expected FetchedAt to be set")
	}
}

func TestVideoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"items": []any{}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Video(context.Background(), "missing")

	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestCommentsSortedByLikes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/commentThreads" {
			t.Errorf("expected /commentThreads, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("order"); got != "relevance" {
			t.Errorf("expected order=relevance, got %q", got)
		}

		items := make([]map[string]any, 0, 6)
		for i, likes := range []int{3, 50, 7, 1, 20, 11} {
			items = append(items, map[string]any{
				"id": fmt.Sprintf("c%d", i),
				"snippet": map[string]any{
					"topLevelComment": map[string]any{
						"snippet": map[string]any{
							"authorDisplayName": "author",
							"textDisplay":       "text",
							"likeCount":         likes,
							"publishedAt":       "2025-05-01T10:00:00Z",
						},
					},
				},
			})
		}
		writeJSON(t, w, map[string]any{"items": items})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	comments, err := client.Comments(context.Background(), "vid123", 3)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments after trim, got %d", len(comments))
	}
	wantLikes := []int64{50, 20, 11}
	for i, c := range comments {
		if c.LikeCount != wantLikes[i] {
			t.Errorf("comment %d has %d likes, want %d", i, c.LikeCount, wantLikes[i])
		}
	}
}

func TestCommentsKeepLargeLikeCounts(t *testing.T) {
	// Viral comments overflow 32-bit counts; the full value must
	// survive into the domain type.
	const viralLikes int64 = 3_000_000_000

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{
			"items": []map[string]any{
				{
					"id": "c1",
					"snippet": map[string]any{
						"topLevelComment": map[string]any{
							"snippet": map[string]any{
								"authorDisplayName": "author",
								"textDisplay":       "text",
								"likeCount":         viralLikes,
								"publishedAt":       "2025-05-01T10:00:00Z",
							},
						},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	comments, err := client.Comments(context.Background(), "vid123", 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].LikeCount != viralLikes {
		t.Errorf("LikeCount = %d, want %d", comments[0].LikeCount, viralLikes)
	}
}

func TestCommentsPaginates(t *testing.T) {
	var pages int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		token := r.URL.Query().Get("pageToken")

		resp := map[string]any{
			"items": []map[string]any{{
				"id": fmt.Sprintf("c-%s-%d", token, pages),
				"snippet": map[string]any{
					"topLevelComment": map[string]any{
						"snippet": map[string]any{
							"authorDisplayName": "author",
							"textDisplay":       "text",
							"likeCount":         pages,
							"publishedAt":       "2025-05-01T10:00:00Z",
						},
					},
				},
			}},
		}
		if token == "" {
			resp["nextPageToken"] = "page2"
		}
		writeJSON(t, w, resp)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	comments, err := client.Comments(context.Background(), "vid123", 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pages != 2 {
		t.Errorf("expected 2 pages fetched, got %d", pages)
	}
	if len(comments) != 1 {
		t.Errorf("expected 1 comment after trim, got %d", len(comments))
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reason string
		want   error
	}{
		{"quota exhausted", http.StatusForbidden, "quotaExceeded", ErrQuotaExceeded},
		{"comments disabled", http.StatusForbidden, "commentsDisabled", ErrCommentsDisabled},
		{"forbidden without reason", http.StatusForbidden, "accessNotConfigured", ErrAuthentication},
		{"bad key", http.StatusUnauthorized, "", ErrAuthentication},
		{"not found", http.StatusNotFound, "notFound", ErrVideoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				status, body := apiError(tt.status, tt.reason)
				w.WriteHeader(status)
				writeJSON(t, w, body)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.Comments(context.Background(), "vid123", 5)

			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
