package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/msomdec/todolist-auth/internal/domain"
)

// TokenConfig holds the settings bearer tokens are minted and checked with.
type TokenConfig struct {
	SigningKey string
	Issuer     string
	Audience   string
	Lifetime   time.Duration
}

// Claims is the payload of an access token. Subject carries the user ID.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates HS256 bearer tokens.
type TokenIssuer struct {
	key      []byte
	issuer   string
	audience string
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenIssuer creates a TokenIssuer from cfg.
func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	return &TokenIssuer{
		key:      []byte(cfg.SigningKey),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		lifetime: cfg.Lifetime,
		now:      time.Now,
	}
}

// Issue returns a signed token for user that expires after the configured
// lifetime. Every token gets a fresh jti.
func (ti *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := ti.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    ti.issuer,
			Audience:  jwt.ClaimStrings{ti.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature, issuer, audience and expiration of
// tokenString and returns its claims. All failures wrap
// domain.ErrUnauthorized.
func (ti *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return ti.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ti.issuer),
		jwt.WithAudience(ti.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errors.New("missing subject"))
	}
	return claims, nil
}
