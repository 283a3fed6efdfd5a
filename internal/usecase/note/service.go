package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"newsroom/internal/authz"
	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// CreateInput represents the input parameters for creating a note.
// Slug is optional: when empty it is derived from the title.
type CreateInput struct {
	Title    string
	Text     string
	Slug     string
	AuthorID int64
}

// UpdateInput represents the input parameters for editing a note.
// Slug addresses the note being edited; NewSlug, when set, replaces it.
type UpdateInput struct {
	Slug    string
	ActorID int64
	Title   string
	Text    string
	NewSlug string
}

// Service provides note use cases scoped to the acting user.
type Service struct {
	Repo repository.NoteRepository
}

// List retrieves the acting user's notes. Foreign notes never appear.
func (s *Service) List(ctx context.Context, actorID int64) ([]*entity.Note, error) {
	if actorID <= 0 {
		return nil, fmt.Errorf("list notes: actor ID must be positive, got %d", actorID)
	}

	notes, err := s.Repo.ListByAuthor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create adds a note for the acting user. An empty slug is derived
// from the title and truncated to the maximum slug length. A slug
// already in use by any note yields a ValidationError naming it.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Note, error) {
	if in.AuthorID <= 0 {
		return nil, fmt.Errorf("create note: author ID must be positive, got %d", in.AuthorID)
	}
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}

	noteSlug, err := s.resolveSlug(ctx, in.Slug, in.Title)
	if err != nil {
		return nil, err
	}

	n := &entity.Note{
		Title:    in.Title,
		Text:     in.Text,
		Slug:     noteSlug,
		AuthorID: in.AuthorID,
	}

	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// Get retrieves a note visible to the acting user.
// Returns ErrNoteNotFound when the note does not exist or belongs to
// another user.
func (s *Service) Get(ctx context.Context, noteSlug string, actorID int64) (*entity.Note, error) {
	return s.fetchOwned(ctx, noteSlug, actorID, authz.OpView)
}

// Update edits the acting user's own note. The author link never
// changes. An empty NewSlug keeps the current slug.
// Returns ErrNoteNotFound when the note does not exist or belongs to
// another user.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Note, error) {
	n, err := s.fetchOwned(ctx, in.Slug, in.ActorID, authz.OpEdit)
	if err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}

	newSlug := in.NewSlug
	if newSlug == "" {
		newSlug = n.Slug
	}
	if len(newSlug) > entity.SlugMaxLength {
		return nil, &entity.ValidationError{Field: "slug", Message: fmt.Sprintf("must be at most %d characters", entity.SlugMaxLength)}
	}
	if !slugCharsValid(newSlug) {
		return nil, &entity.ValidationError{Field: "slug", Message: slugCharsMessage}
	}
	if newSlug != n.Slug {
		taken, err := s.Repo.ExistsBySlug(ctx, newSlug)
		if err != nil {
			return nil, fmt.Errorf("update note: check slug: %w", err)
		}
		if taken {
			return nil, &entity.ValidationError{Field: "slug", Message: SlugConflictMessage(newSlug)}
		}
	}

	n.Title = in.Title
	n.Text = in.Text
	n.Slug = newSlug

	if err := s.Repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

// Delete removes the acting user's own note.
// Returns ErrNoteNotFound when the note does not exist or belongs to
// another user.
func (s *Service) Delete(ctx context.Context, noteSlug string, actorID int64) error {
	n, err := s.fetchOwned(ctx, noteSlug, actorID, authz.OpDelete)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, n.ID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// fetchOwned loads a note and applies the ownership rule. A denied
// operation is reported as ErrNoteNotFound.
func (s *Service) fetchOwned(ctx context.Context, noteSlug string, actorID int64, op authz.Op) (*entity.Note, error) {
	if noteSlug == "" {
		return nil, ErrInvalidSlug
	}

	n, err := s.Repo.GetBySlug(ctx, noteSlug)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	if n == nil {
		return nil, ErrNoteNotFound
	}
	if !authz.Allowed(actorID, n.AuthorID, op) {
		return nil, ErrNoteNotFound
	}
	return n, nil
}

// resolveSlug picks the slug for a new note: the explicit one when
// given, otherwise one derived from the title. Either way the result
// must be unused.
func (s *Service) resolveSlug(ctx context.Context, explicit, title string) (string, error) {
	noteSlug := explicit
	if noteSlug == "" {
		noteSlug = MakeSlug(title)
		if noteSlug == "" {
			return "", &entity.ValidationError{Field: "slug", Message: "could not be derived from title"}
		}
	}
	if len(noteSlug) > entity.SlugMaxLength {
		return "", &entity.ValidationError{Field: "slug", Message: fmt.Sprintf("must be at most %d characters", entity.SlugMaxLength)}
	}
	if !slugCharsValid(noteSlug) {
		return "", &entity.ValidationError{Field: "slug", Message: slugCharsMessage}
	}

	taken, err := s.Repo.ExistsBySlug(ctx, noteSlug)
	if err != nil {
		return "", fmt.Errorf("create note: check slug: %w", err)
	}
	if taken {
		return "", &entity.ValidationError{Field: "slug", Message: SlugConflictMessage(noteSlug)}
	}
	return noteSlug, nil
}

const slugCharsMessage = "may contain only latin letters, digits, hyphens and underscores"

// slugCharsValid reports whether a slug uses only the characters a
// note URL accepts. Derived slugs always pass; explicit ones may not.
func slugCharsValid(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// MakeSlug derives a URL slug from a title. Cyrillic titles are
// transliterated, then the result is truncated to the maximum length
// without leaving a trailing hyphen.
func MakeSlug(title string) string {
	s := slug.Make(title)
	if len(s) > entity.SlugMaxLength {
		s = strings.TrimRight(s[:entity.SlugMaxLength], "-")
	}
	return s
}
