package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/todolist-auth/internal/config"
	"github.com/msomdec/todolist-auth/internal/domain"
	"github.com/msomdec/todolist-auth/internal/handler"
	"github.com/msomdec/todolist-auth/internal/repository/postgres"
	"github.com/msomdec/todolist-auth/internal/repository/sqlite"
	"github.com/msomdec/todolist-auth/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	db, err := openDatabase(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied", "driver", cfg.DatabaseDriver)

	tokens := service.NewTokenIssuer(cfg.Token())
	authService := service.NewAuthService(db.Users(), tokens, cfg.BcryptCost)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Middleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "issuer", cfg.JWTIssuer, "token_lifetime", cfg.TokenLifetime())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openDatabase(ctx context.Context, cfg *config.Config) (domain.Database, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
