package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/msomdec/todolist-auth/internal/domain"
	"github.com/msomdec/todolist-auth/internal/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection pool and the repositories built on it.
type DB struct {
	SqlDB *sql.DB
	users *UserRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys on every connection.
func New(dbPath string) (*DB, error) {
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")

	sqlDB, err := sql.Open("sqlite", "file:"+dbPath+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows one writer; a single connection serializes writes
	// instead of surfacing SQLITE_BUSY to callers.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.users = NewUserRepository(db)
	return db, nil
}

// Migrate applies the embedded SQLite schema.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB, migrations.SQLite)
}

// Users returns the credential store.
func (db *DB) Users() domain.UserRepository {
	return db.users
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}
