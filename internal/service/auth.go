package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/msomdec/todolist-auth/internal/domain"
)

const minPasswordLength = 8

// AuthService handles user registration, login, and token checks.
type AuthService struct {
	users      domain.UserRepository
	tokens     *TokenIssuer
	bcryptCost int
	// dummyHash is compared against when the email is unknown so that a
	// missing account costs as much as a wrong password.
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *TokenIssuer, bcryptCost int) *AuthService {
	dummy, _ := HashPassword("dummy-password-for-timing", bcryptCost)
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// Register validates the input, stores a new credential record and returns
// its identity. The password hash never leaves this method.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.Identity, error) {
	email = domain.NormalizeEmail(email)

	if email == "" || password == "" {
		return domain.Identity{}, fmt.Errorf("%w: required fields", domain.ErrInvalidInput)
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return domain.Identity{}, fmt.Errorf("%w: password too short", domain.ErrInvalidInput)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.Identity{}, domain.ErrDuplicateEmail
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.Identity{}, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}

	// A concurrent registration can pass the existence check; the store's
	// unique index still rejects it with ErrDuplicateEmail.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.Identity{}, err
		}
		return domain.Identity{}, fmt.Errorf("create user: %w", err)
	}

	return user.Identity(), nil
}

// Login verifies credentials and returns a signed bearer token.
// Unknown emails and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = domain.NormalizeEmail(email)

	if email == "" || password == "" {
		return "", fmt.Errorf("%w: required fields", domain.ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			VerifyPassword(s.dummyHash, password)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// ValidateToken parses and validates a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokens.Validate(tokenString)
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
