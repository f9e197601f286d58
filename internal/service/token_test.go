package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/todolist-auth/internal/domain"
	"github.com/msomdec/todolist-auth/internal/service"
)

var testUser = &domain.User{
	ID:    "0f8fad5b-d9cb-469f-a165-70867728950e",
	Email: "x@example.com",
}

func TestTokenIssuer_ClaimsRoundTrip(t *testing.T) {
	cfg := testTokenConfig()
	issuer := service.NewTokenIssuer(cfg)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.SetTokenClock(issuer, func() time.Time { return now })

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, testUser.ID, claims.Subject)
	assert.Equal(t, testUser.Email, claims.Email)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{cfg.Audience}, claims.Audience)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.IssuedAt.Time.Equal(now))
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(cfg.Lifetime)))
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := service.NewTokenIssuer(testTokenConfig())
	issued := time.Now()
	service.SetTokenClock(issuer, func() time.Time { return issued })

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	service.SetTokenClock(issuer, func() time.Time { return issued.Add(31 * time.Minute) })
	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenIssuer_WrongIssuerOrAudience(t *testing.T) {
	token, err := service.NewTokenIssuer(testTokenConfig()).Issue(testUser)
	require.NoError(t, err)

	otherIssuer := testTokenConfig()
	otherIssuer.Issuer = "someone-else"
	_, err = service.NewTokenIssuer(otherIssuer).Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	otherAudience := testTokenConfig()
	otherAudience.Audience = "another-api"
	_, err = service.NewTokenIssuer(otherAudience).Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	cfg := testTokenConfig()
	claims := service.Claims{
		Email: testUser.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testUser.ID,
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	// Same key, different HMAC variant.
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.SigningKey))
	require.NoError(t, err)
	_, err = service.NewTokenIssuer(cfg).Validate(hs512)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = service.NewTokenIssuer(cfg).Validate(unsigned)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenIssuer_RequiresExpiration(t *testing.T) {
	cfg := testTokenConfig()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  testUser.ID,
			Issuer:   cfg.Issuer,
			Audience: jwt.ClaimStrings{cfg.Audience},
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SigningKey))
	require.NoError(t, err)

	_, err = service.NewTokenIssuer(cfg).Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenIssuer_RequiresSubject(t *testing.T) {
	cfg := testTokenConfig()
	token, err := service.NewTokenIssuer(cfg).Issue(&domain.User{Email: "nobody@example.com"})
	require.NoError(t, err)

	_, err = service.NewTokenIssuer(cfg).Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
