// Package sqlite provides SQLite implementations of the repository
// interfaces, used for local development and lightweight deployments.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// UserRepo implements repository.UserRepository using SQLite.
type UserRepo struct{ db repository.DB }

// NewUserRepo creates a new SQLite-backed user repository.
func NewUserRepo(db repository.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (username, password_hash, created_at)
VALUES (?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	user.ID = id
	return nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, username, password_hash, created_at
FROM users
WHERE id = ?
LIMIT 1
`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = ?
LIMIT 1
`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetByUsername: QueryRowContext: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE username = ? LIMIT 1`
	var exists bool
	err := repo.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ExistsByUsername: %w", err)
	}
	return true, nil
}
