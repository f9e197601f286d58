package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
)

// ErrInvalidCredentials is returned by login for both an unknown email and a
// wrong password so callers cannot tell the two apart.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
