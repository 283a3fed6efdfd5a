package session

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// FromContext returns the signed-in identity attached to the request
// context, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(Identity)
	return id, ok
}

// WithIdentity returns middleware that resolves the session cookie and
// attaches the identity to the request context. Requests without a
// valid session proceed anonymously; an expired or tampered cookie is
// cleared.
func (m *Manager) WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		id, err := m.Parse(cookie.Value)
		if err != nil {
			ClearCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ctxIdentity, *id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth returns middleware that redirects anonymous requests to
// the login page, carrying the original URL in the next parameter so
// login can return the user to it.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			target := "/auth/login?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SafeNext validates a post-login redirect target. Only local absolute
// paths are accepted; anything else falls back to the home page.
func SafeNext(next string) string {
	if next == "" || next[0] != '/' {
		return "/"
	}
	// Reject protocol-relative URLs like //evil.example. Browsers treat
	// backslashes as slashes, so /\evil.example counts too.
	if len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return "/"
	}
	if strings.ContainsRune(next, '\\') {
		return "/"
	}
	return next
}
