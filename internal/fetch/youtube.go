// Package fetch retrieves video metadata and comments from the YouTube
// Data API v3.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

const (
	// DefaultBaseURL is the production YouTube Data API endpoint.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	defaultTimeout = 10 * time.Second
)

// Options configure a Client beyond its credentials.
type Options struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// MaxResults caps page size and total oversampling (API limit 100).
	MaxResults int
	// FetchMultiplier oversamples comments before the like-count sort,
	// since the API cannot order by likes directly.
	FetchMultiplier int
	// RequestsPerSecond bounds the API request rate.
	RequestsPerSecond int
}

// Client is a YouTube Data API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter

	maxResults      int
	fetchMultiplier int

	telemetry *telemetry.Provider
	logger    logger.Logger
}

// NewClient creates a YouTube client.
func NewClient(apiKey string, opts Options, tel *telemetry.Provider, log logger.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.MaxResults < 1 {
		opts.MaxResults = 100
	}
	if opts.FetchMultiplier < 1 {
		opts.FetchMultiplier = 2
	}
	if opts.RequestsPerSecond < 1 {
		opts.RequestsPerSecond = 5
	}

	return &Client{
		httpClient:      &http.Client{Timeout: defaultTimeout},
		baseURL:         opts.BaseURL,
		apiKey:          apiKey,
		limiter:         rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.RequestsPerSecond),
		maxResults:      opts.MaxResults,
		fetchMultiplier: opts.FetchMultiplier,
		telemetry:       tel,
		logger:          log,
	}
}

// API response shapes, trimmed to the fields we read.

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string    `json:"title"`
			ChannelID    string    `json:"channelId"`
			ChannelTitle string    `json:"channelTitle"`
			PublishedAt  time.Time `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type commentThreadsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID      string `json:"id"`
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					AuthorDisplayName string    `json:"authorDisplayName"`
					TextDisplay       string    `json:"textDisplay"`
					LikeCount         int64     `json:"likeCount"`
					PublishedAt       time.Time `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// Video fetches metadata for one video. Returns ErrVideoNotFound when
// the API responds with an empty item list.
func (c *Client) Video(ctx context.Context, videoID string) (*domain.Video, error) {
	c.logger.Info("fetching video metadata", logger.String("video_id", videoID))

	query := url.Values{
		"part": {"snippet,statistics"},
		"id":   {videoID},
	}

	var resp videoListResponse
	if err := c.get(ctx, "videos", query, &resp); err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, ErrVideoNotFound)
	}

	item := resp.Items[0]
	return &domain.Video{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		ChannelID:    item.Snippet.ChannelID,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  item.Snippet.PublishedAt,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
		FetchedAt:    time.Now().UTC(),
	}, nil
}

// Comments fetches up to limit top-level comments sorted by like count
// descending. The API cannot order by likes, so it oversamples by
// relevance and sorts locally.
func (c *Client) Comments(ctx context.Context, videoID string, limit int) ([]domain.Comment, error) {
	c.logger.Info("fetching comments",
		logger.String("video_id", videoID),
		logger.Int("limit", limit),
	)

	fetchLimit := limit * c.fetchMultiplier
	if fetchLimit > c.maxResults {
		fetchLimit = c.maxResults
	}

	comments := make([]domain.Comment, 0, fetchLimit)
	pageToken := ""

	for len(comments) < fetchLimit {
		query := url.Values{
			"part":       {"snippet"},
			"videoId":    {videoID},
			"order":      {"relevance"},
			"maxResults": {strconv.Itoa(min(c.maxResults, fetchLimit-len(comments)))},
		}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		var resp commentThreadsResponse
		if err := c.get(ctx, "commentThreads", query, &resp); err != nil {
			return nil, fmt.Errorf("fetch comments %s: %w", videoID, err)
		}

		for _, item := range resp.Items {
			snippet := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, domain.Comment{
				CommentID:   item.ID,
				Author:      snippet.AuthorDisplayName,
				Text:        snippet.TextDisplay,
				LikeCount:   snippet.LikeCount,
				PublishedAt: snippet.PublishedAt,
			})
			if len(comments) >= fetchLimit {
				break
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" || len(comments) >= fetchLimit {
			break
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].LikeCount > comments[j].LikeCount
	})

	if len(comments) > limit {
		comments = comments[:limit]
	}

	c.logger.Info("comments fetched",
		logger.String("video_id", videoID),
		logger.Int("count", len(comments)),
	)
	return comments, nil
}

// get performs one rate-limited API request and maps error responses to
// the sentinel taxonomy.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	query.Set("key", c.apiKey)
	reqURL := c.baseURL + "/" + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.telemetry.RecordFetch(ctx, endpoint, "transport_error")
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		mapped := c.mapAPIError(resp)
		c.telemetry.RecordFetch(ctx, endpoint, strconv.Itoa(resp.StatusCode))
		return mapped
	}

	c.telemetry.RecordFetch(ctx, endpoint, "ok")
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapAPIError converts an API error response into a sentinel error.
// 403 is overloaded: the reason field separates quota exhaustion and
// disabled comments from plain access denial.
func (c *Client) mapAPIError(resp *http.Response) error {
	var reason string
	var apiErr apiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Error.Errors) > 0 {
		reason = apiErr.Error.Errors[0].Reason
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: status 401", ErrAuthentication)
	case http.StatusForbidden:
		switch reason {
		case "quotaExceeded":
			c.telemetry.RecordQuotaExhausted(context.Background())
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, reason)
		case "commentsDisabled":
			return fmt.Errorf("%w: %s", ErrCommentsDisabled, reason)
		default:
			return fmt.Errorf("%w: status 403, reason %q", ErrAuthentication, reason)
		}
	case http.StatusNotFound:
		return fmt.Errorf("%w: status 404", ErrVideoNotFound)
	default:
		return fmt.Errorf("youtube api error: status %d, reason %q", resp.StatusCode, reason)
	}
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
