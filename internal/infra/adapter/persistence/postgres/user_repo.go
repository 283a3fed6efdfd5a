// Package postgres provides PostgreSQL implementations of the repository
// interfaces. Queries use the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsroom/internal/domain/entity"
	"newsroom/internal/repository"
)

// UserRepo implements repository.UserRepository using PostgreSQL.
type UserRepo struct{ db repository.DB }

// NewUserRepo creates a new PostgreSQL-backed user repository.
func NewUserRepo(db repository.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (username, password_hash, created_at)
VALUES ($1, $2, $3)
RETURNING id
`
	err := repo.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, username, password_hash, created_at
FROM users
WHERE id = $1
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
WHERE username = $1
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
	const query = `SELECT 1 FROM users WHERE username = $1 LIMIT 1`
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
