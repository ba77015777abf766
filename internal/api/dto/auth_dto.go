package dto

import (
	"time"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest updates the password of the signed-in account.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PasswordResetRequest starts the forgotten-password flow.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest completes the forgotten-password flow.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// AccountResponse is the public shape of an account.
type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	Account   AccountResponse `json:"account"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// NewAuthResponse builds the response from the domain account and token.
func NewAuthResponse(account *domain.Account, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		Account: AccountResponse{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
			Role:  string(account.Role),
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}
}
