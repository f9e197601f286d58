package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/msomdec/todolist-auth/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext extracts the validated token claims from the request
// context. Returns nil if the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*service.Claims)
	return claims
}

// RequireAuth is middleware that protects routes requiring authentication.
// It reads the Authorization: Bearer header, validates signature, issuer,
// audience and expiry, and injects the claims into the request context.
// Returns 401 for unauthenticated requests.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="todolist"`)
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			slog.DebugContext(r.Context(), "reject bearer token", "error", err)
			w.Header().Set("WWW-Authenticate", `Bearer realm="todolist", error="invalid_token"`)
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// LogRequests logs one line per request with its status and duration.
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Middleware wraps the router with the standard middleware stack.
func Middleware(next http.Handler) http.Handler {
	h := SecurityHeaders(next)
	h = middleware.Recoverer(h)
	h = LogRequests(h)
	h = middleware.RealIP(h)
	return middleware.RequestID(h)
}
