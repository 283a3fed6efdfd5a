// Package comment provides use cases for commenting on news items.
// It enforces the moderation blocklist on submitted text and owner-only
// access to edits and deletions. A comment that fails the ownership
// check is reported as not found rather than forbidden, so foreign
// comment IDs are indistinguishable from missing ones.
package comment

import "errors"

// Sentinel errors for comment use case operations.
var (
	// ErrCommentNotFound indicates that the requested comment was not
	// found or is not visible to the acting user.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidCommentID indicates that the provided comment ID is invalid.
	// Comment IDs must be positive integers.
	ErrInvalidCommentID = errors.New("invalid comment ID")

	// ErrNewsNotFound indicates that the news item being commented on
	// does not exist.
	ErrNewsNotFound = errors.New("news not found")
)
