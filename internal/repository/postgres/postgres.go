// Package postgres implements the credential store on PostgreSQL through
// the pgx database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/msomdec/todolist-auth/internal/domain"
	"github.com/msomdec/todolist-auth/internal/migrations"
)

// DB wraps a PostgreSQL connection pool and the repositories built on it.
type DB struct {
	SqlDB *sql.DB
	users *UserRepository
}

// New opens a pool for the given DSN and verifies connectivity.
func New(ctx context.Context, dsn string) (*DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.users = NewUserRepository(db)
	return db, nil
}

// Migrate applies the embedded PostgreSQL schema.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB, migrations.Postgres)
}

// Users returns the credential store.
func (db *DB) Users() domain.UserRepository {
	return db.users
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}
