package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/todolist-auth/internal/domain"
	"github.com/msomdec/todolist-auth/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a JSON registration request.
// POST /auth/register
// Request:  {"email":"...","password":"..."}
// Response: 201 {"id":"...","email":"...","created_at":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "a user already exists with this email")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "register user", "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	w.Header().Set("Location", "/users/"+identity.ID)
	writeJSON(w, http.StatusCreated, toIdentityDTO(identity))
}

// HandleLogin processes a JSON login request.
// POST /auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"token":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "login user", "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, TokenDTO{Token: token})
}

// HandleMe returns the account behind the bearer token.
// GET /auth/me
// Response: 200 {"id":"...","email":"...","created_at":"..."} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.auth.GetUserByID(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		slog.ErrorContext(r.Context(), "get current user", "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, toIdentityDTO(user.Identity()))
}
