// Package respond provides utilities for sending HTTP responses.
// Page handlers render templates themselves; this package covers the
// JSON endpoints (health) and error paths, with sanitization to avoid
// leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; log and move on.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a plain-text error response with the given status code.
func Error(w http.ResponseWriter, code int, err error) {
	http.Error(w, err.Error(), code)
}

// safeErrors lists substrings of error messages that are safe to show
// to users, such as validation failures.
var safeErrors = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"already taken",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"rate limit",
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (e.g. database errors) are returned as a generic
// message with details logged; validation-style errors pass through.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 5xx responses never echo the underlying error.
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		http.Error(w, msg, code)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	http.Error(w, http.StatusText(code), code)
}
