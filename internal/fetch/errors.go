package fetch

import "errors"

// Sentinel errors for YouTube Data API failures. Callers branch on
// these with errors.Is.
var (
	// ErrQuotaExceeded means the daily API quota is exhausted.
	ErrQuotaExceeded = errors.New("youtube api quota exceeded")

	// ErrAuthentication means the API key is invalid or access was
	// denied for a reason other than quota.
	ErrAuthentication = errors.New("youtube api authentication failed")

	// ErrVideoNotFound means the video does not exist or is private.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentsDisabled means the video exists but has comments
	// turned off.
	ErrCommentsDisabled = errors.New("comments disabled for video")
)
