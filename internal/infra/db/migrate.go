package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the schema for the given driver if it does not exist.
// The DDL differs only in ID generation and timestamp types between
// PostgreSQL and SQLite.
func MigrateUp(database *sql.DB, driver string) error {
	var statements []string
	switch driver {
	case DriverPostgres:
		statements = postgresSchema
	case DriverSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("migrate: unsupported driver %q", driver)
	}

	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

var postgresSchema = []string{
	`
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`
CREATE TABLE IF NOT EXISTS news (
    id    BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    text  TEXT NOT NULL,
    date  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`
CREATE TABLE IF NOT EXISTS comments (
    id        BIGSERIAL PRIMARY KEY,
    news_id   BIGINT NOT NULL REFERENCES news(id) ON DELETE CASCADE,
    author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    text      TEXT NOT NULL,
    created   TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`
CREATE TABLE IF NOT EXISTS notes (
    id        BIGSERIAL PRIMARY KEY,
    title     TEXT NOT NULL,
    text      TEXT NOT NULL,
    slug      VARCHAR(100) NOT NULL UNIQUE,
    author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
)`,
	// Home page reads ORDER BY date DESC LIMIT n.
	`CREATE INDEX IF NOT EXISTS idx_news_date ON news(date DESC)`,
	// Detail page reads comments per item in ascending creation order.
	`CREATE INDEX IF NOT EXISTS idx_comments_news_created ON comments(news_id, created)`,
	// Notes list filters on the owner.
	`CREATE INDEX IF NOT EXISTS idx_notes_author ON notes(author_id)`,
}

var sqliteSchema = []string{
	`
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`
CREATE TABLE IF NOT EXISTS news (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    text  TEXT NOT NULL,
    date  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`
CREATE TABLE IF NOT EXISTS comments (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    news_id   INTEGER NOT NULL REFERENCES news(id) ON DELETE CASCADE,
    author_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    text      TEXT NOT NULL,
    created   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`
CREATE TABLE IF NOT EXISTS notes (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    title     TEXT NOT NULL,
    text      TEXT NOT NULL,
    slug      TEXT NOT NULL UNIQUE,
    author_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_news_date ON news(date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_news_created ON comments(news_id, created)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_author ON notes(author_id)`,
}
