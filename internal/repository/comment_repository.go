package repository

import (
	"context"

	"newsroom/internal/domain/entity"
)

// CommentRepository persists comments on news items.
type CommentRepository interface {
	// ListByNews retrieves all comments on a news item ordered by creation
	// timestamp ascending (oldest first).
	ListByNews(ctx context.Context, newsID int64) ([]*entity.Comment, error)
	// Get retrieves a comment by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// Create inserts a new comment and fills in the generated ID.
	Create(ctx context.Context, comment *entity.Comment) error
	// Update stores the comment's mutable fields. Author and news links
	// are never rewritten.
	Update(ctx context.Context, comment *entity.Comment) error
	// Delete removes a comment by ID.
	Delete(ctx context.Context, id int64) error
	// CountByNews returns the number of comments on a news item.
	CountByNews(ctx context.Context, newsID int64) (int64, error)
}
