package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Article is a headline pulled from a live news feed and queued for checking.
type Article struct {
	ID          int64
	Headline    string
	Body        string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
	FetchedAt   time.Time
	ExternalID  string
	Status      string
}
