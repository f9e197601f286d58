package domain

import (
	"context"
	"strings"
	"time"
)

// User is a stored credential record. Records are created once at
// registration and never updated.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the part of a User that is safe to hand back to clients.
type Identity struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Identity projects the user without its password hash.
func (u *User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UserRepository defines persistence operations for credential records.
// Implementations normalize email arguments with NormalizeEmail and must
// back email uniqueness with a storage-level constraint.
type UserRepository interface {
	// Create assigns ID and CreatedAt and inserts the record.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
