// Package db - Lead store
// SQLite-backed storage for submitted quote requests.
package db

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/ziyabeey1-ai/mysite/internal/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens the SQLite database, sets recommended pragmas, and
// validates connectivity.
func Open(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Database("open sqlite database", err)
	}

	if _, err := conn.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		conn.Close()
		return nil, errors.Database("set sqlite pragmas", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, errors.Database("ping sqlite database", err)
	}

	return conn, nil
}

// Migrate runs all pending embedded migrations
func Migrate(conn *sql.DB) error {
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Database("set goose dialect", err)
	}

	if err := goose.Up(conn, "migrations"); err != nil {
		return errors.Database("run migrations", err)
	}

	return nil
}
