package session

import (
	"errors"
	"log/slog"
	"net/http"

	"newsroom/internal/domain/entity"
	"newsroom/internal/handler/http/view"
	"newsroom/internal/usecase/user"
)

// invalidCredentialsMessage is shown when a login attempt fails. It is
// the same for unknown usernames and wrong passwords.
const invalidCredentialsMessage = "Неверное имя пользователя или пароль."

// Handlers serves the login, signup and logout pages.
type Handlers struct {
	Users    *user.Service
	Sessions *Manager
	View     *view.Renderer
	Logger   *slog.Logger

	// LogoutStatus is the status code of a successful logout response.
	// Codes in the 3xx range redirect to the home page instead of
	// rendering the logout page.
	LogoutStatus int
}

type authPage struct {
	view.Page
	Next          string
	Error         string
	UsernameDraft string
}

// LoginPage renders the login form. The next query parameter, if
// present, is carried into the form action so a successful login can
// return the user to the page that required it.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.View.Render(w, http.StatusOK, "login.html", authPage{
		Page: view.Page{Title: "Вход"},
		Next: r.URL.Query().Get("next"),
	})
}

// Login authenticates the submitted credentials. A failed attempt
// re-renders the form with an error; a successful one sets the session
// cookie and redirects to the next target.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	next := r.URL.Query().Get("next")

	u, err := h.Users.Authenticate(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			RecordLoginAttempt(false)
			h.Logger.Info("login rejected", slog.String("username", username))
			h.View.Render(w, http.StatusOK, "login.html", authPage{
				Page:          view.Page{Title: "Вход"},
				Next:          next,
				Error:         invalidCredentialsMessage,
				UsernameDraft: username,
			})
			return
		}
		h.Logger.Error("login failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.signIn(w, u); err != nil {
		h.Logger.Error("issue session", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	RecordLoginAttempt(true)
	http.Redirect(w, r, SafeNext(next), http.StatusFound)
}

// SignupPage renders the registration form.
func (h *Handlers) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.View.Render(w, http.StatusOK, "signup.html", authPage{
		Page: view.Page{Title: "Регистрация"},
	})
}

// Signup registers a new account and signs it in. Validation failures
// re-render the form with the reason.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")

	u, err := h.Users.Register(r.Context(), user.RegisterInput{
		Username: username,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			h.View.Render(w, http.StatusOK, "signup.html", authPage{
				Page:          view.Page{Title: "Регистрация"},
				Error:         ve.Field + " " + ve.Message,
				UsernameDraft: username,
			})
			return
		}
		h.Logger.Error("signup failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.signIn(w, u); err != nil {
		h.Logger.Error("issue session", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	RecordSignup()
	h.Logger.Info("account created", slog.Int64("user_id", u.ID), slog.String("username", u.Username))
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout clears the session. Only reachable via POST; the route table
// leaves GET to the method-not-allowed default.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	ClearCookie(w)

	status := h.LogoutStatus
	if status == 0 {
		status = http.StatusOK
	}
	if status >= 300 {
		http.Redirect(w, r, "/", status)
		return
	}
	h.View.Render(w, status, "logout.html", view.Page{Title: "Выход"})
}

func (h *Handlers) signIn(w http.ResponseWriter, u *entity.User) error {
	token, err := h.Sessions.Issue(Identity{UserID: u.ID, Username: u.Username})
	if err != nil {
		return err
	}
	h.Sessions.SetCookie(w, token)
	return nil
}
