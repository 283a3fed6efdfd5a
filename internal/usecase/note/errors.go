// Package note provides use cases for personal notes. Every note
// belongs to exactly one author; listings are scoped to the acting
// user and any access to a foreign note is reported as not found.
package note

import "errors"

// Sentinel errors for note use case operations.
var (
	// ErrNoteNotFound indicates that the requested note was not found
	// or is not visible to the acting user.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidSlug indicates that the provided slug is empty or
	// exceeds the maximum length.
	ErrInvalidSlug = errors.New("invalid slug")
)

// SlugConflictMessage builds the validation message attached to a
// duplicate slug. It names the conflicting slug so the form can show it.
func SlugConflictMessage(slug string) string {
	return slug + " - this slug already exists, pick a unique value"
}
