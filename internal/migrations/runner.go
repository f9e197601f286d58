// Package migrations holds the embedded schema for every supported
// database backend and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect names a migration set and the goose dialect used to track it.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// goose keeps its base FS and dialect in package state.
var mu sync.Mutex

// Run applies all unapplied migrations for the dialect to the database.
// Applied versions are tracked by goose in goose_db_version.
func Run(ctx context.Context, db *sql.DB, dialect Dialect) error {
	dir, err := dialect.dir()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(FS)
	goose.SetLogger(slogLogger{})
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Version reports the highest applied migration version.
func Version(ctx context.Context, db *sql.DB, dialect Dialect) (int64, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := goose.SetDialect(string(dialect)); err != nil {
		return 0, fmt.Errorf("set dialect: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db)
}

func (d Dialect) dir() (string, error) {
	switch d {
	case SQLite:
		return "sqlite", nil
	case Postgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", string(d))
	}
}

// slogLogger routes goose output through the default slog logger.
type slogLogger struct{}

func (slogLogger) Printf(format string, v ...any) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (slogLogger) Fatalf(format string, v ...any) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}
