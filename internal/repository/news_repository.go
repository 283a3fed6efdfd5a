package repository

import (
	"context"

	"newsroom/internal/domain/entity"
)

// NewsRepository persists news items.
type NewsRepository interface {
	// ListRecent retrieves at most limit news items ordered by date
	// descending (newest first).
	ListRecent(ctx context.Context, limit int) ([]*entity.News, error)
	// Get retrieves a news item by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.News, error)
	// Create inserts a new news item and fills in the generated ID.
	Create(ctx context.Context, news *entity.News) error
	// Count returns the total number of news items.
	Count(ctx context.Context) (int64, error)
}
