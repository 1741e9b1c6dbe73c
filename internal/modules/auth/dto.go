package auth

import "autohub/internal/domain"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse pairs an account with a fresh bearer token.
type SessionResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}
