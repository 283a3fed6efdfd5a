// Package notes serves the personal notes pages. Every route requires
// a signed-in user; a note belonging to someone else is reported as
// not found.
package notes

import (
	"errors"
	"log/slog"
	"net/http"

	"newsroom/internal/domain/entity"
	apphttp "newsroom/internal/handler/http"
	"newsroom/internal/handler/http/pathutil"
	"newsroom/internal/handler/http/session"
	"newsroom/internal/handler/http/view"
	noteUC "newsroom/internal/usecase/note"
)

// Handlers serves the notes list, forms and detail pages.
type Handlers struct {
	Notes  *noteUC.Service
	View   *view.Renderer
	Logger *slog.Logger
}

type listPage struct {
	view.Page
	Notes []*entity.Note
}

type formPage struct {
	view.Page
	Heading    string
	Action     string
	Error      string
	TitleDraft string
	TextDraft  string
	SlugDraft  string
}

type notePage struct {
	view.Page
	Note *entity.Note
}

// List renders the acting user's notes. Other users' notes never
// appear here.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	id, _ := session.FromContext(r.Context())

	items, err := h.Notes.List(r.Context(), id.UserID)
	if err != nil {
		h.serverError(w, "list notes", err)
		return
	}

	h.View.Render(w, http.StatusOK, "notes_list.html", listPage{
		Page:  view.Page{Title: "Мои заметки", Username: id.Username},
		Notes: items,
	})
}

// AddPage renders the empty note form.
func (h *Handlers) AddPage(w http.ResponseWriter, r *http.Request) {
	id, _ := session.FromContext(r.Context())
	h.View.Render(w, http.StatusOK, "note_form.html", formPage{
		Page:    view.Page{Title: "Новая заметка", Username: id.Username},
		Heading: "Новая заметка",
		Action:  "/notes/add",
	})
}

// Add creates a note. A validation failure, including a duplicate
// slug, re-renders the form with the reason; nothing is stored.
func (h *Handlers) Add(w http.ResponseWriter, r *http.Request) {
	id, _ := session.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	title := r.PostFormValue("title")
	text := r.PostFormValue("text")
	slugValue := r.PostFormValue("slug")

	_, err := h.Notes.Create(r.Context(), noteUC.CreateInput{
		Title:    title,
		Text:     text,
		Slug:     slugValue,
		AuthorID: id.UserID,
	})
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			if ve.Field == "slug" {
				apphttp.RecordSlugConflict()
			}
			h.View.Render(w, http.StatusOK, "note_form.html", formPage{
				Page:       view.Page{Title: "Новая заметка", Username: id.Username},
				Heading:    "Новая заметка",
				Action:     "/notes/add",
				Error:      ve.Message,
				TitleDraft: title,
				TextDraft:  text,
				SlugDraft:  slugValue,
			})
			return
		}
		h.serverError(w, "create note", err)
		return
	}

	apphttp.RecordNoteCreated()
	http.Redirect(w, r, "/notes/done", http.StatusFound)
}

// Done renders the confirmation page shown after a saved note.
func (h *Handlers) Done(w http.ResponseWriter, r *http.Request) {
	id, _ := session.FromContext(r.Context())
	h.View.Render(w, http.StatusOK, "done.html", view.Page{
		Title:    "Готово",
		Username: id.Username,
	})
}

// Detail renders one of the acting user's notes.
func (h *Handlers) Detail(w http.ResponseWriter, r *http.Request) {
	n, ok := h.loadOwnNote(w, r)
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())
	h.View.Render(w, http.StatusOK, "note_detail.html", notePage{
		Page: view.Page{Title: n.Title, Username: id.Username},
		Note: n,
	})
}

// EditPage renders the note form pre-filled with the current values.
func (h *Handlers) EditPage(w http.ResponseWriter, r *http.Request) {
	n, ok := h.loadOwnNote(w, r)
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())
	h.View.Render(w, http.StatusOK, "note_form.html", formPage{
		Page:       view.Page{Title: "Редактирование заметки", Username: id.Username},
		Heading:    "Редактирование заметки",
		Action:     "/notes/" + n.Slug + "/edit",
		TitleDraft: n.Title,
		TextDraft:  n.Text,
		SlugDraft:  n.Slug,
	})
}

// Edit saves changes to the acting user's own note. Changing the slug
// to one already in use re-renders the form naming the conflict.
func (h *Handlers) Edit(w http.ResponseWriter, r *http.Request) {
	n, ok := h.loadOwnNote(w, r)
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	title := r.PostFormValue("title")
	text := r.PostFormValue("text")
	slugValue := r.PostFormValue("slug")

	_, err := h.Notes.Update(r.Context(), noteUC.UpdateInput{
		Slug:    n.Slug,
		ActorID: id.UserID,
		Title:   title,
		Text:    text,
		NewSlug: slugValue,
	})
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			if ve.Field == "slug" {
				apphttp.RecordSlugConflict()
			}
			h.View.Render(w, http.StatusOK, "note_form.html", formPage{
				Page:       view.Page{Title: "Редактирование заметки", Username: id.Username},
				Heading:    "Редактирование заметки",
				Action:     "/notes/" + n.Slug + "/edit",
				Error:      ve.Message,
				TitleDraft: title,
				TextDraft:  text,
				SlugDraft:  slugValue,
			})
			return
		}
		if errors.Is(err, noteUC.ErrNoteNotFound) || errors.Is(err, noteUC.ErrInvalidSlug) {
			h.View.NotFound(w)
			return
		}
		h.serverError(w, "update note", err)
		return
	}

	http.Redirect(w, r, "/notes/done", http.StatusFound)
}

// DeletePage renders the delete confirmation.
func (h *Handlers) DeletePage(w http.ResponseWriter, r *http.Request) {
	n, ok := h.loadOwnNote(w, r)
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())
	h.View.Render(w, http.StatusOK, "note_delete.html", notePage{
		Page: view.Page{Title: "Удаление заметки", Username: id.Username},
		Note: n,
	})
}

// Delete removes the acting user's own note and returns to the list.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	noteSlug, err := pathutil.ParseSlug(r.PathValue("slug"))
	if err != nil {
		h.View.NotFound(w)
		return
	}
	id, _ := session.FromContext(r.Context())

	if err := h.Notes.Delete(r.Context(), noteSlug, id.UserID); err != nil {
		if errors.Is(err, noteUC.ErrNoteNotFound) || errors.Is(err, noteUC.ErrInvalidSlug) {
			h.View.NotFound(w)
			return
		}
		h.serverError(w, "delete note", err)
		return
	}

	http.Redirect(w, r, "/notes/done", http.StatusFound)
}

// loadOwnNote resolves the {slug} path segment to a note owned by the
// acting user, writing the 404 page when it cannot.
func (h *Handlers) loadOwnNote(w http.ResponseWriter, r *http.Request) (*entity.Note, bool) {
	noteSlug, err := pathutil.ParseSlug(r.PathValue("slug"))
	if err != nil {
		h.View.NotFound(w)
		return nil, false
	}
	id, _ := session.FromContext(r.Context())

	n, err := h.Notes.Get(r.Context(), noteSlug, id.UserID)
	if err != nil {
		if errors.Is(err, noteUC.ErrNoteNotFound) || errors.Is(err, noteUC.ErrInvalidSlug) {
			h.View.NotFound(w)
			return nil, false
		}
		h.serverError(w, "get note", err)
		return nil, false
	}
	return n, true
}

func (h *Handlers) serverError(w http.ResponseWriter, op string, err error) {
	h.Logger.Error(op, slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
