package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// NoteRepo implements repository.NoteRepository using PostgreSQL.
type NoteRepo struct{ db repository.DB }

// NewNoteRepo creates a new PostgreSQL-backed note repository.
func NewNoteRepo(db repository.DB) repository.NoteRepository {
	return &NoteRepo{db: db}
}

// ListByAuthor retrieves only the notes owned by authorID. The ownership
// filter lives in the query so foreign notes never reach the caller.
func (repo *NoteRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Note, error) {
	const query = `
SELECT id, title, text, slug, author_id
FROM notes
WHERE author_id = $1
ORDER BY id ASC
`
	rows, err := repo.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ListByAuthor: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notes := make([]*entity.Note, 0, 16)
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID); err != nil {
			return nil, fmt.Errorf("ListByAuthor: Scan: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByAuthor: rows.Err: %w", err)
	}
	return notes, nil
}

func (repo *NoteRepo) GetBySlug(ctx context.Context, slug string) (*entity.Note, error) {
	const query = `
SELECT id, title, text, slug, author_id
FROM notes
WHERE slug = $1
LIMIT 1
`
	var n entity.Note
	err := repo.db.QueryRowContext(ctx, query, slug).Scan(
		&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetBySlug: QueryRowContext: %w", err)
	}
	return &n, nil
}

func (repo *NoteRepo) Create(ctx context.Context, note *entity.Note) error {
	const query = `
INSERT INTO notes (title, text, slug, author_id)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	err := repo.db.QueryRowContext(ctx, query,
		note.Title, note.Text, note.Slug, note.AuthorID,
	).Scan(&note.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields; the author link stays as created.
func (repo *NoteRepo) Update(ctx context.Context, note *entity.Note) error {
	const query = `
UPDATE notes SET
	title = $1,
	text  = $2,
	slug  = $3
WHERE id = $4
`
	res, err := repo.db.ExecContext(ctx, query,
		note.Title, note.Text, note.Slug, note.ID,
	)
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

func (repo *NoteRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM notes WHERE id = $1`
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

func (repo *NoteRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT 1 FROM notes WHERE slug = $1 LIMIT 1`
	var exists bool
	err := repo.db.QueryRowContext(ctx, query, slug).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return true, nil
}

func (repo *NoteRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM notes`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}
