package news

import (
	"net/http"

	"newsroom/internal/handler/http/session"
)

// Register registers the news and comment routes with the given mux.
// Reading is public; posting, editing and deleting comments require a
// signed-in user and redirect anonymous visitors to the login page.
func Register(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET  /{$}", h.Home)
	mux.HandleFunc("GET  /news/{id}", h.Detail)

	mux.Handle("POST /news/{id}/comment", session.RequireAuth(http.HandlerFunc(h.CreateComment)))
	mux.Handle("GET  /comments/{id}/edit", session.RequireAuth(http.HandlerFunc(h.EditCommentPage)))
	mux.Handle("POST /comments/{id}/edit", session.RequireAuth(http.HandlerFunc(h.EditComment)))
	mux.Handle("GET  /comments/{id}/delete", session.RequireAuth(http.HandlerFunc(h.DeleteCommentPage)))
	mux.Handle("POST /comments/{id}/delete", session.RequireAuth(http.HandlerFunc(h.DeleteComment)))
	mux.Handle("DELETE /comments/{id}/delete", session.RequireAuth(http.HandlerFunc(h.DeleteComment)))
}
