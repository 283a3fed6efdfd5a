package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// NewsRepo implements repository.NewsRepository using SQLite.
type NewsRepo struct{ db repository.DB }

// NewNewsRepo creates a new SQLite-backed news repository.
func NewNewsRepo(db repository.DB) repository.NewsRepository {
	return &NewsRepo{db: db}
}

// ListRecent retrieves the newest news items, date descending.
func (repo *NewsRepo) ListRecent(ctx context.Context, limit int) ([]*entity.News, error) {
	const query = `
SELECT id, title, text, date
FROM news
ORDER BY date DESC
LIMIT ?
`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRecent: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.News, 0, limit)
	for rows.Next() {
		var item entity.News
		if err := rows.Scan(&item.ID, &item.Title, &item.Text, &item.Date); err != nil {
			return nil, fmt.Errorf("ListRecent: Scan: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecent: rows.Err: %w", err)
	}
	return items, nil
}

func (repo *NewsRepo) Get(ctx context.Context, id int64) (*entity.News, error) {
	const query = `
SELECT id, title, text, date
FROM news
WHERE id = ?
LIMIT 1
`
	var item entity.News
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Text, &item.Date,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &item, nil
}

func (repo *NewsRepo) Create(ctx context.Context, news *entity.News) error {
	const query = `
INSERT INTO news (title, text, date)
VALUES (?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query, news.Title, news.Text, news.Date)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	news.ID = id
	return nil
}

func (repo *NewsRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM news`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}
