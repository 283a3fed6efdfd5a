package news

import (
	"context"
	"fmt"
	"time"

	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// CreateInput represents the input parameters for publishing a news item.
type CreateInput struct {
	Title string
	Text  string
	Date  time.Time
}

// Service provides news management use cases.
// It handles business logic for news operations and delegates persistence to the repository.
type Service struct {
	Repo repository.NewsRepository
}

// Home retrieves the news items shown on the home page, newest first.
// The limit caps how many items are returned.
func (s *Service) Home(ctx context.Context, limit int) ([]*entity.News, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("home news: limit must be positive, got %d", limit)
	}

	items, err := s.Repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("home news: %w", err)
	}
	return items, nil
}

// Get retrieves a single news item by its ID.
// Returns ErrInvalidNewsID if the ID is not positive.
// Returns ErrNewsNotFound if the item does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.News, error) {
	if id <= 0 {
		return nil, ErrInvalidNewsID
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}
	return item, nil
}

// Create publishes a new news item with the provided input.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.News, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Text == "" {
		return nil, &entity.ValidationError{Field: "text", Message: "is required"}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	item := &entity.News{
		Title: in.Title,
		Text:  in.Text,
		Date:  date,
	}

	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return item, nil
}

// Count returns the total number of news items.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return n, nil
}
