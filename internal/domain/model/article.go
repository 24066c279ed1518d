package model

import "time"

// Article is a single news story as returned by a headline provider.
type Article struct {
	Title       string
	Source      string
	URL         string
	PublishedAt time.Time
}
