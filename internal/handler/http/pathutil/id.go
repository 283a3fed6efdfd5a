// Package pathutil provides helpers for URL path values: numeric ID
// parsing, slug validation, and path normalization for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when an ID path value is invalid.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidSlug is returned when a slug path value is invalid.
var ErrInvalidSlug = errors.New("invalid slug")

// maxSlugLength matches the slug column width.
const maxSlugLength = 100

// ParseID parses a path value as a positive int64 ID.
//
// Example:
//
//	id, err := pathutil.ParseID(r.PathValue("id"))
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseSlug validates a slug path value: non-empty, bounded length,
// and limited to the characters a generated slug can contain.
func ParseSlug(s string) (string, error) {
	if s == "" || len(s) > maxSlugLength {
		return "", ErrInvalidSlug
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return "", ErrInvalidSlug
		}
	}
	return s, nil
}
