package domain

import "time"

// Comment is a single fetched comment. The classification pipeline
// attaches Sentiment in place; every other field passes through
// unmodified.
type Comment struct {
	CommentID   string    `json:"comment_id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	LikeCount   int64     `json:"like_count"`
	PublishedAt time.Time `json:"published_at"`

	Sentiment *SentimentScores `json:"sentiment,omitempty"`
}
