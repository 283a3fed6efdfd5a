package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	// News routes with IDs
	{Pattern: regexp.MustCompile(`^/news/\d+/comment$`), Template: "/news/:id/comment"},
	{Pattern: regexp.MustCompile(`^/news/\d+$`), Template: "/news/:id"},

	// Comment routes with IDs
	{Pattern: regexp.MustCompile(`^/comments/\d+/edit$`), Template: "/comments/:id/edit"},
	{Pattern: regexp.MustCompile(`^/comments/\d+/delete$`), Template: "/comments/:id/delete"},

	// Note routes with slugs. Fixed segments (add, done) are listed in
	// the mux before the wildcard, so they stay as-is here too.
	{Pattern: regexp.MustCompile(`^/notes/(?:add|done)$`), Template: ""},
	{Pattern: regexp.MustCompile(`^/notes/[A-Za-z0-9_-]+/edit$`), Template: "/notes/:slug/edit"},
	{Pattern: regexp.MustCompile(`^/notes/[A-Za-z0-9_-]+/delete$`), Template: "/notes/:slug/delete"},
	{Pattern: regexp.MustCompile(`^/notes/[A-Za-z0-9_-]+$`), Template: "/notes/:slug"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs or slugs collapse to template
// form (e.g. /news/123 becomes /news/:id); static paths pass through
// unchanged.
//
// Examples:
//
//	NormalizePath("/news/123")            // "/news/:id"
//	NormalizePath("/news/123/comment")    // "/news/:id/comment"
//	NormalizePath("/notes/my-note")       // "/notes/:slug"
//	NormalizePath("/notes/add")           // "/notes/add" (unchanged)
//	NormalizePath("/healthz")             // "/healthz" (unchanged)
//	NormalizePath("/news/123?page=1")     // "/news/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			if p.Template == "" {
				return path
			}
			return p.Template
		}
	}

	// No match found: static paths like /healthz, /metrics, /auth/login
	// pass through unchanged.
	return path
}
