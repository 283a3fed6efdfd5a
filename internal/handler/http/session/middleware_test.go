package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func identityEcho(t *testing.T, got *Identity, ok *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, found := FromContext(r.Context())
		*got = id
		*ok = found
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithIdentityValidCookie(t *testing.T) {
	m := newTestManager(time.Hour)
	token, err := m.Issue(Identity{UserID: 7, Username: "author"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	var got Identity
	var ok bool
	handler := m.WithIdentity(identityEcho(t, &got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("identity not attached to context")
	}
	if got.UserID != 7 || got.Username != "author" {
		t.Errorf("identity = %+v, want UserID=7 Username=author", got)
	}
}

func TestWithIdentityNoCookie(t *testing.T) {
	m := newTestManager(time.Hour)

	var got Identity
	var ok bool
	handler := m.WithIdentity(identityEcho(t, &got, &ok))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if ok {
		t.Errorf("anonymous request got identity %+v", got)
	}
}

func TestWithIdentityInvalidCookieCleared(t *testing.T) {
	m := newTestManager(time.Hour)

	var got Identity
	var ok bool
	handler := m.WithIdentity(identityEcho(t, &got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if ok {
		t.Error("invalid cookie should not yield an identity")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("invalid cookie should be cleared, got %+v", cookies)
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for anonymous request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/notes/add?x=1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	want := "/auth/login?next=%2Fnotes%2Fadd%3Fx%3D1"
	if loc := rec.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	m := newTestManager(time.Hour)
	token, err := m.Issue(Identity{UserID: 3, Username: "author"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	called := false
	handler := m.WithIdentity(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	req := httptest.NewRequest(http.MethodGet, "/notes/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("handler should run for authenticated request")
	}
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/news/1", "/news/1"},
		{"/notes/add?x=1", "/notes/add?x=1"},
		{"https://evil.example/", "/"},
		{"//evil.example/", "/"},
		{`/\evil.example/`, "/"},
		{`/notes\..\evil`, "/"},
		{"relative/path", "/"},
	}
	for _, tt := range tests {
		if got := SafeNext(tt.next); got != tt.want {
			t.Errorf("SafeNext(%q) = %q, want %q", tt.next, got, tt.want)
		}
	}
}
