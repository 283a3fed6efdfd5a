package comment

import (
	"context"
	"fmt"
	"time"

	"newsroom/internal/authz"
	"newsroom/internal/domain/entity"
	"newsroom/internal/moderation"
	"newsroom/internal/repository"
)

// CreateInput represents the input parameters for posting a comment.
type CreateInput struct {
	NewsID   int64
	AuthorID int64
	Text     string
}

// UpdateInput represents the input parameters for editing a comment.
// Only the text is mutable.
type UpdateInput struct {
	ID      int64
	ActorID int64
	Text    string
}

// Service provides comment use cases. Submitted text passes the
// moderation blocklist on both creation and edit.
type Service struct {
	Repo repository.CommentRepository
	News repository.NewsRepository

	// BadWords is the moderation blocklist applied to comment text.
	BadWords []string
}

// ListForNews retrieves all comments on a news item, oldest first.
func (s *Service) ListForNews(ctx context.Context, newsID int64) ([]*entity.Comment, error) {
	if newsID <= 0 {
		return nil, ErrNewsNotFound
	}

	comments, err := s.Repo.ListByNews(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CountForNews returns the number of comments on a news item.
func (s *Service) CountForNews(ctx context.Context, newsID int64) (int64, error) {
	n, err := s.Repo.CountByNews(ctx, newsID)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

// Create posts a comment on a news item.
// Returns ErrNewsNotFound if the news item does not exist.
// Returns a ValidationError carrying the moderation warning if the text
// contains a blocklisted word.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	if in.AuthorID <= 0 {
		return nil, fmt.Errorf("create comment: author ID must be positive, got %d", in.AuthorID)
	}

	if err := s.checkText(in.Text); err != nil {
		return nil, err
	}

	item, err := s.News.Get(ctx, in.NewsID)
	if err != nil {
		return nil, fmt.Errorf("create comment: get news: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}

	c := &entity.Comment{
		NewsID:   in.NewsID,
		AuthorID: in.AuthorID,
		Text:     in.Text,
		Created:  time.Now(),
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// Get retrieves a comment visible to the acting user.
// Returns ErrCommentNotFound when the comment does not exist or belongs
// to another user.
func (s *Service) Get(ctx context.Context, id, actorID int64) (*entity.Comment, error) {
	c, err := s.fetchOwned(ctx, id, actorID, authz.OpView)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update edits the text of the acting user's own comment. The news and
// author links never change.
// Returns ErrCommentNotFound when the comment does not exist or belongs
// to another user.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Comment, error) {
	c, err := s.fetchOwned(ctx, in.ID, in.ActorID, authz.OpEdit)
	if err != nil {
		return nil, err
	}

	if err := s.checkText(in.Text); err != nil {
		return nil, err
	}

	c.Text = in.Text
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

// Delete removes the acting user's own comment and returns the ID of
// the news item it belonged to, so callers can redirect back to it.
// Returns ErrCommentNotFound when the comment does not exist or belongs
// to another user.
func (s *Service) Delete(ctx context.Context, id, actorID int64) (int64, error) {
	c, err := s.fetchOwned(ctx, id, actorID, authz.OpDelete)
	if err != nil {
		return 0, err
	}

	if err := s.Repo.Delete(ctx, c.ID); err != nil {
		return 0, fmt.Errorf("delete comment: %w", err)
	}
	return c.NewsID, nil
}

// fetchOwned loads a comment and applies the ownership rule. A denied
// operation is reported as ErrCommentNotFound.
func (s *Service) fetchOwned(ctx context.Context, id, actorID int64, op authz.Op) (*entity.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}
	if !authz.Allowed(actorID, c.AuthorID, op) {
		return nil, ErrCommentNotFound
	}
	return c, nil
}

// checkText validates comment text against the basic requirements and
// the moderation blocklist.
func (s *Service) checkText(text string) error {
	if text == "" {
		return &entity.ValidationError{Field: "text", Message: "is required"}
	}
	if word := moderation.FirstMatch(text, s.BadWords); word != "" {
		return &entity.ValidationError{Field: "text", Message: moderation.Warning}
	}
	return nil
}
