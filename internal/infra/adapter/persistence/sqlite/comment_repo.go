package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// CommentRepo implements repository.CommentRepository using SQLite.
type CommentRepo struct{ db repository.DB }

// NewCommentRepo creates a new SQLite-backed comment repository.
func NewCommentRepo(db repository.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

// ListByNews retrieves comments on a news item in ascending creation order.
func (repo *CommentRepo) ListByNews(ctx context.Context, newsID int64) ([]*entity.Comment, error) {
	const query = `
SELECT id, news_id, author_id, text, created
FROM comments
WHERE news_id = ?
ORDER BY created ASC
`
	rows, err := repo.db.QueryContext(ctx, query, newsID)
	if err != nil {
		return nil, fmt.Errorf("ListByNews: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.Text, &c.Created); err != nil {
			return nil, fmt.Errorf("ListByNews: Scan: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByNews: rows.Err: %w", err)
	}
	return comments, nil
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, news_id, author_id, text, created
FROM comments
WHERE id = ?
LIMIT 1
`
	var c entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.NewsID, &c.AuthorID, &c.Text, &c.Created,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &c, nil
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (news_id, author_id, text, created)
VALUES (?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		comment.NewsID, comment.AuthorID, comment.Text, comment.Created,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	comment.ID = id
	return nil
}

// Update rewrites only the text; news and author links stay as created.
func (repo *CommentRepo) Update(ctx context.Context, comment *entity.Comment) error {
	const query = `
UPDATE comments SET
	text = ?
WHERE id = ?
`
	res, err := repo.db.ExecContext(ctx, query, comment.Text, comment.ID)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) CountByNews(ctx context.Context, newsID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments WHERE news_id = ?`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, newsID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByNews: QueryRowContext: %w", err)
	}
	return count, nil
}
