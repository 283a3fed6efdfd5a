// Package entity defines the core domain entities and validation logic for
// the application. It contains the fundamental business objects such as News,
// Comment and Note, along with their domain-specific errors.
package entity

import "time"

// News represents a published news item. The home page shows the most
// recent items ordered by Date descending.
type News struct {
	ID    int64
	Title string
	Text  string
	Date  time.Time
}
