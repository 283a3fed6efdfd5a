// Package news serves the public news pages and the comment forms
// attached to them.
package news

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"newsroom/internal/domain/entity"
	apphttp "newsroom/internal/handler/http"
	"newsroom/internal/handler/http/pathutil"
	"newsroom/internal/handler/http/session"
	"newsroom/internal/handler/http/view"
	commentUC "newsroom/internal/usecase/comment"
	newsUC "newsroom/internal/usecase/news"
	userUC "newsroom/internal/usecase/user"
	"newsroom/internal/utils/text"
)

// previewRunes caps the teaser text shown for each item on the home page.
const previewRunes = 200

// Handlers serves the home page, news detail pages and comment forms.
type Handlers struct {
	News     *newsUC.Service
	Comments *commentUC.Service
	Users    *userUC.Service
	View     *view.Renderer
	Logger   *slog.Logger

	// HomeCount is how many items the home page shows.
	HomeCount int
}

type newsTeaser struct {
	ID      int64
	Title   string
	Date    time.Time
	Preview string
}

type homePage struct {
	view.Page
	News []newsTeaser
}

type commentView struct {
	ID         int64
	AuthorName string
	Created    time.Time
	Text       string
	Editable   bool
}

type detailPage struct {
	view.Page
	Item     *entity.News
	Comments []commentView
	Warning  string
	Draft    string
}

type commentFormPage struct {
	view.Page
	Comment *entity.Comment
	Warning string
	Draft   string
}

// Home renders the most recent news, newest first.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	items, err := h.News.Home(r.Context(), h.HomeCount)
	if err != nil {
		h.serverError(w, "load home page", err)
		return
	}

	teasers := make([]newsTeaser, 0, len(items))
	for _, item := range items {
		teasers = append(teasers, newsTeaser{
			ID:      item.ID,
			Title:   item.Title,
			Date:    item.Date,
			Preview: text.Truncate(item.Text, previewRunes),
		})
	}

	h.View.Render(w, http.StatusOK, "home.html", homePage{
		Page: view.Page{Title: "Новости", Username: username(r)},
		News: teasers,
	})
}

// Detail renders one news item with its comments, oldest first.
func (h *Handlers) Detail(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadNews(w, r)
	if !ok {
		return
	}
	h.renderDetail(w, r, item, http.StatusOK, "", "")
}

// CreateComment posts a comment on a news item. A moderation rejection
// re-renders the detail page with the warning and the submitted text;
// nothing is stored.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadNews(w, r)
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")

	_, err := h.Comments.Create(r.Context(), commentUC.CreateInput{
		NewsID:   item.ID,
		AuthorID: id.UserID,
		Text:     text,
	})
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			apphttp.RecordCommentSubmitted(false)
			h.renderDetail(w, r, item, http.StatusOK, ve.Message, text)
			return
		}
		h.serverError(w, "create comment", err)
		return
	}

	apphttp.RecordCommentSubmitted(true)
	http.Redirect(w, r, newsAnchor(item.ID), http.StatusFound)
}

// EditCommentPage renders the edit form for the acting user's own
// comment. Someone else's comment yields 404.
func (h *Handlers) EditCommentPage(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadOwnComment(w, r)
	if !ok {
		return
	}
	h.View.Render(w, http.StatusOK, "comment_edit.html", commentFormPage{
		Page:    view.Page{Title: "Редактирование комментария", Username: username(r)},
		Comment: c,
		Draft:   c.Text,
	})
}

// EditComment saves an edited comment. Moderation applies the same way
// as on creation.
func (h *Handlers) EditComment(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadOwnComment(w, r)
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")

	updated, err := h.Comments.Update(r.Context(), commentUC.UpdateInput{
		ID:      c.ID,
		ActorID: id.UserID,
		Text:    text,
	})
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			h.View.Render(w, http.StatusOK, "comment_edit.html", commentFormPage{
				Page:    view.Page{Title: "Редактирование комментария", Username: username(r)},
				Comment: c,
				Warning: ve.Message,
				Draft:   text,
			})
			return
		}
		if errors.Is(err, commentUC.ErrCommentNotFound) {
			h.View.NotFound(w)
			return
		}
		h.serverError(w, "update comment", err)
		return
	}

	http.Redirect(w, r, newsAnchor(updated.NewsID), http.StatusFound)
}

// DeleteCommentPage renders the delete confirmation for the acting
// user's own comment.
func (h *Handlers) DeleteCommentPage(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadOwnComment(w, r)
	if !ok {
		return
	}
	h.View.Render(w, http.StatusOK, "comment_delete.html", commentFormPage{
		Page:    view.Page{Title: "Удаление комментария", Username: username(r)},
		Comment: c,
	})
}

// DeleteComment removes the acting user's own comment and returns to
// the news item it belonged to.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		h.View.NotFound(w)
		return
	}
	id, _ := session.FromContext(r.Context())

	newsID, err := h.Comments.Delete(r.Context(), commentID, id.UserID)
	if err != nil {
		if errors.Is(err, commentUC.ErrCommentNotFound) || errors.Is(err, commentUC.ErrInvalidCommentID) {
			h.View.NotFound(w)
			return
		}
		h.serverError(w, "delete comment", err)
		return
	}

	http.Redirect(w, r, newsAnchor(newsID), http.StatusFound)
}

// loadNews resolves the {id} path segment to a news item, writing the
// 404 page when it cannot.
func (h *Handlers) loadNews(w http.ResponseWriter, r *http.Request) (*entity.News, bool) {
	newsID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		h.View.NotFound(w)
		return nil, false
	}

	item, err := h.News.Get(r.Context(), newsID)
	if err != nil {
		if errors.Is(err, newsUC.ErrNewsNotFound) || errors.Is(err, newsUC.ErrInvalidNewsID) {
			h.View.NotFound(w)
			return nil, false
		}
		h.serverError(w, "get news", err)
		return nil, false
	}
	return item, true
}

// loadOwnComment resolves the {id} path segment to a comment owned by
// the acting user, writing the 404 page when it cannot.
func (h *Handlers) loadOwnComment(w http.ResponseWriter, r *http.Request) (*entity.Comment, bool) {
	commentID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		h.View.NotFound(w)
		return nil, false
	}
	id, _ := session.FromContext(r.Context())

	c, err := h.Comments.Get(r.Context(), commentID, id.UserID)
	if err != nil {
		if errors.Is(err, commentUC.ErrCommentNotFound) || errors.Is(err, commentUC.ErrInvalidCommentID) {
			h.View.NotFound(w)
			return nil, false
		}
		h.serverError(w, "get comment", err)
		return nil, false
	}
	return c, true
}

func (h *Handlers) renderDetail(w http.ResponseWriter, r *http.Request, item *entity.News, code int, warning, draft string) {
	comments, err := h.Comments.ListForNews(r.Context(), item.ID)
	if err != nil {
		h.serverError(w, "list comments", err)
		return
	}

	id, _ := session.FromContext(r.Context())
	names := make(map[int64]string)
	views := make([]commentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, commentView{
			ID:         c.ID,
			AuthorName: h.authorName(r.Context(), names, c.AuthorID),
			Created:    c.Created,
			Text:       c.Text,
			Editable:   id.UserID == c.AuthorID,
		})
	}

	h.View.Render(w, code, "news_detail.html", detailPage{
		Page:     view.Page{Title: item.Title, Username: username(r)},
		Item:     item,
		Comments: views,
		Warning:  warning,
		Draft:    draft,
	})
}

// authorName resolves a comment author's username, caching lookups for
// the duration of one page render.
func (h *Handlers) authorName(ctx context.Context, cache map[int64]string, authorID int64) string {
	if name, ok := cache[authorID]; ok {
		return name
	}

	name := "user " + strconv.FormatInt(authorID, 10)
	if u, err := h.Users.Get(ctx, authorID); err == nil {
		name = u.Username
	} else {
		h.Logger.Warn("resolve comment author", slog.Int64("author_id", authorID), slog.Any("error", err))
	}
	cache[authorID] = name
	return name
}

func (h *Handlers) serverError(w http.ResponseWriter, op string, err error) {
	h.Logger.Error(op, slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func username(r *http.Request) string {
	id, _ := session.FromContext(r.Context())
	return id.Username
}

func newsAnchor(newsID int64) string {
	return "/news/" + strconv.FormatInt(newsID, 10) + "#comments"
}
