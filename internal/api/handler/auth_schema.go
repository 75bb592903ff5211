package handler

import "github.com/leaflink/storefront/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Defined here for the swagger annotations; the actual rendering
// happens in the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Mobile   string `json:"mobile"   validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"address"`
	// Role is optional; empty defaults to customer, unknown values are rejected.
	Role string `json:"role" validate:"omitempty,oneof=admin customer manager qa"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}
