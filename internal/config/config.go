// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/msomdec/todolist-auth/internal/service"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime configuration for the service.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080" validate:"required"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"sqlite" validate:"oneof=sqlite postgres"`
	DatabasePath   string `envconfig:"DATABASE_PATH" default:"todolist.db" validate:"required_if=DatabaseDriver sqlite"`
	DatabaseURL    string `envconfig:"DATABASE_URL" validate:"required_if=DatabaseDriver postgres"`

	// JWTSecret signs tokens with HMAC-SHA256 and must be at least 32 bytes.
	JWTSecret          string `envconfig:"JWT_SECRET" required:"true" validate:"required,min=32"`
	JWTIssuer          string `envconfig:"JWT_ISSUER" default:"todolist-auth" validate:"required"`
	JWTAudience        string `envconfig:"JWT_AUDIENCE" default:"todolist-api" validate:"required"`
	JWTLifetimeMinutes int    `envconfig:"JWT_LIFETIME_MINUTES" default:"60" validate:"gt=0"`

	BcryptCost int `envconfig:"BCRYPT_COST" default:"12" validate:"min=4,max=14"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TokenLifetime returns the configured token lifetime.
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.JWTLifetimeMinutes) * time.Minute
}

// Token returns the settings the token issuer is built from.
func (c *Config) Token() service.TokenConfig {
	return service.TokenConfig{
		SigningKey: c.JWTSecret,
		Issuer:     c.JWTIssuer,
		Audience:   c.JWTAudience,
		Lifetime:   c.TokenLifetime(),
	}
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
