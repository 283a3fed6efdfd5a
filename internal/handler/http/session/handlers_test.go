package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"newsroom/internal/domain/entity"
	apphttp "newsroom/internal/handler/http"
	"newsroom/internal/handler/http/view"
	userUC "newsroom/internal/usecase/user"
)

type stubUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entity.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) seed(t *testing.T, username, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &entity.User{ID: r.nextID, Username: username, PasswordHash: string(hash), CreatedAt: time.Now()}
	r.nextID++
	r.users[username] = u
	return u
}

func newTestMux(t *testing.T, repo *stubUserRepo, logoutStatus int) *http.ServeMux {
	t.Helper()
	renderer, err := view.New()
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	h := &Handlers{
		Users:        &userUC.Service{Repo: repo, MinPasswordLength: 8},
		Sessions:     newTestManager(time.Hour),
		View:         renderer,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogoutStatus: logoutStatus,
	}
	mux := http.NewServeMux()
	Register(mux, h, apphttp.NewRateLimiter(600, 100))
	return mux
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "reader", "correct horse")
	mux := newTestMux(t, repo, http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/login?next=%2Fnews%2F5", url.Values{
		"username": {"reader"},
		"password": {"correct horse"},
	}))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/news/5" {
		t.Errorf("Location = %q, want %q", loc, "/news/5")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value == "" {
		t.Errorf("expected a session cookie, got %+v", cookies)
	}
}

func TestLoginWrongPasswordRerendersForm(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "reader", "correct horse")
	mux := newTestMux(t, repo, http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/login", url.Values{
		"username": {"reader"},
		"password": {"wrong"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, invalidCredentialsMessage) {
		t.Error("response should contain the invalid credentials message")
	}
	if !strings.Contains(body, `value="reader"`) {
		t.Error("response should keep the submitted username in the form")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("failed login must not set a session cookie")
	}
}

func TestLoginUnknownUserRerendersForm(t *testing.T) {
	mux := newTestMux(t, newStubUserRepo(), http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/login", url.Values{
		"username": {"nobody"},
		"password": {"whatever"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), invalidCredentialsMessage) {
		t.Error("response should contain the invalid credentials message")
	}
}

func TestLoginPageCarriesNext(t *testing.T) {
	mux := newTestMux(t, newStubUserRepo(), http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login?next=%2Fnotes%2F", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	// html/template URL-escapes the query value
	if !strings.Contains(rec.Body.String(), "next=%2fnotes%2f") {
		t.Error("login form action should carry the next target")
	}
}

func TestSignupCreatesAccountAndSignsIn(t *testing.T) {
	repo := newStubUserRepo()
	mux := newTestMux(t, repo, http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/signup", url.Values{
		"username": {"newbie"},
		"password": {"longenoughpassword"},
	}))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
	if _, ok := repo.users["newbie"]; !ok {
		t.Error("account was not created")
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Error("signup should sign the new account in")
	}
}

func TestSignupDuplicateUsernameRerendersForm(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "taken", "somepassword")
	mux := newTestMux(t, repo, http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/signup", url.Values{
		"username": {"taken"},
		"password": {"longenoughpassword"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "already taken") {
		t.Error("response should name the duplicate username problem")
	}
}

func TestSignupShortPasswordRerendersForm(t *testing.T) {
	mux := newTestMux(t, newStubUserRepo(), http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/signup", url.Values{
		"username": {"newbie"},
		"password": {"short"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "at least 8") {
		t.Error("response should name the password policy problem")
	}
}

func TestLogoutGetIsMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t, newStubUserRepo(), http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	mux := newTestMux(t, newStubUserRepo(), http.StatusOK)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/logout", url.Values{}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("logout should clear the session cookie, got %+v", cookies)
	}
}

func TestLogoutRedirectStatus(t *testing.T) {
	mux := newTestMux(t, newStubUserRepo(), http.StatusSeeOther)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/logout", url.Values{}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
}

func TestLoginRateLimited(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "reader", "correct horse")

	renderer, err := view.New()
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	h := &Handlers{
		Users:    &userUC.Service{Repo: repo, MinPasswordLength: 8},
		Sessions: newTestManager(time.Hour),
		View:     renderer,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	mux := http.NewServeMux()
	Register(mux, h, apphttp.NewRateLimiter(1, 2))

	form := url.Values{"username": {"reader"}, "password": {"wrong"}}
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, postForm("/auth/login", form))
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, postForm("/auth/login", form))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}
