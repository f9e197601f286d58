package handler

import (
	"net/http"

	"github.com/msomdec/todolist-auth/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService) {
	authHandler := NewAuthHandler(auth)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /auth/login", authHandler.HandleLogin)
	mux.Handle("GET /auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /tasks", RequireAuth(auth, http.HandlerFunc(HandleTasks)))
}
