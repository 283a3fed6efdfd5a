package notes

import (
	"net/http"

	"newsroom/internal/handler/http/session"
)

// Register registers the notes routes with the given mux. Everything
// under /notes/ requires a signed-in user.
func Register(mux *http.ServeMux, h *Handlers) {
	authed := func(fn http.HandlerFunc) http.Handler {
		return session.RequireAuth(fn)
	}

	mux.Handle("GET  /notes/{$}", authed(h.List))
	mux.Handle("GET  /notes/add", authed(h.AddPage))
	mux.Handle("POST /notes/add", authed(h.Add))
	mux.Handle("GET  /notes/done", authed(h.Done))
	mux.Handle("GET  /notes/{slug}", authed(h.Detail))
	mux.Handle("GET  /notes/{slug}/edit", authed(h.EditPage))
	mux.Handle("POST /notes/{slug}/edit", authed(h.Edit))
	mux.Handle("GET  /notes/{slug}/delete", authed(h.DeletePage))
	mux.Handle("POST /notes/{slug}/delete", authed(h.Delete))
}
