// Package news provides use cases for publishing and reading news
// items, including the bounded home page listing.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that the requested news item was not found.
	ErrNewsNotFound = errors.New("news not found")

	// ErrInvalidNewsID indicates that the provided news ID is invalid.
	// News IDs must be positive integers.
	ErrInvalidNewsID = errors.New("invalid news ID")
)
