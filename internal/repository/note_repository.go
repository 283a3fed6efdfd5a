package repository

import (
	"context"

	"newsroom/internal/domain/entity"
)

// NoteRepository persists personal notes.
type NoteRepository interface {
	// ListByAuthor retrieves all notes owned by the given user, ordered by ID.
	// Other users' notes never appear in the result.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Note, error)
	// GetBySlug retrieves a note by slug. Returns (nil, nil) if not found.
	GetBySlug(ctx context.Context, slug string) (*entity.Note, error)
	// Create inserts a new note and fills in the generated ID.
	Create(ctx context.Context, note *entity.Note) error
	// Update stores the note's mutable fields (title, text, slug). The
	// author link is never rewritten.
	Update(ctx context.Context, note *entity.Note) error
	// Delete removes a note by ID.
	Delete(ctx context.Context, id int64) error
	// ExistsBySlug reports whether any note carries the slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Count returns the total number of notes.
	Count(ctx context.Context) (int64, error)
}
