package auth

import (
	domain "ecommerce-auth-service/internal/domain/user"
)

// LoginRequest represents the request payload for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request payload for creating a new account.
type RegisterRequest struct {
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required"`
	Name     string        `json:"name" validate:"required,min=1,max=50"`
	Gender   domain.Gender `json:"gender" validate:"required,oneof=Male Female Other"`
}

// AuthenticationResponse represents the response payload for both use cases.
// Success and Token are set by the authentication service only; mapping
// never derives them from the entity.
type AuthenticationResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Token   string `json:"token"`
	Success bool   `json:"success"`
}
