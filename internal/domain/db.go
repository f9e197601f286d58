package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation (SQLite, Postgres) owns its own migration files,
// so the credential store backend is swappable from configuration.
type Database interface {
	Migrate(ctx context.Context) error
	Users() UserRepository
	Close() error
}
