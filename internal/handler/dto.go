package handler

import (
	"time"

	"github.com/msomdec/todolist-auth/internal/domain"
)

// CredentialsRequest is the body of both register and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityDTO is the JSON representation of a registered user.
type IdentityDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toIdentityDTO(id domain.Identity) IdentityDTO {
	return IdentityDTO{
		ID:        id.ID,
		Email:     id.Email,
		CreatedAt: id.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// TokenDTO is the JSON body of a successful login.
type TokenDTO struct {
	Token string `json:"token"`
}
