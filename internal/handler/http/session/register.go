package session

import (
	"net/http"

	apphttp "newsroom/internal/handler/http"
)

// Register registers the login, signup and logout routes with the
// given mux. Login submissions go through the rate limiter; logout is
// POST-only, so a GET gets 405 from the mux itself.
func Register(mux *http.ServeMux, h *Handlers, loginLimiter *apphttp.RateLimiter) {
	mux.HandleFunc("GET  /auth/login", h.LoginPage)
	mux.Handle("POST /auth/login", loginLimiter.Limit(http.HandlerFunc(h.Login)))
	mux.HandleFunc("GET  /auth/signup", h.SignupPage)
	mux.HandleFunc("POST /auth/signup", h.Signup)
	mux.HandleFunc("POST /auth/logout", h.Logout)
}
