package domain

import "time"

// Video holds metadata for an analyzed video, as returned by the data
// API.
type Video struct {
	VideoID      string    `json:"video_id" db:"video_id"`
	Title        string    `json:"title" db:"title"`
	ChannelID    string    `json:"channel_id" db:"channel_id"`
	ChannelTitle string    `json:"channel_title" db:"channel_title"`
	PublishedAt  time.Time `json:"published_at" db:"published_at"`
	ViewCount    int64     `json:"view_count" db:"view_count"`
	LikeCount    int64     `json:"like_count" db:"like_count"`
	CommentCount int64     `json:"comment_count" db:"comment_count"`
	FetchedAt    time.Time `json:"fetched_at" db:"fetched_at"`
}
