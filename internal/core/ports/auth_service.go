package ports

import (
	"context"

	"github.com/leaflink/storefront/internal/core/domain"
)

// RegisterInput carries everything needed to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Address  string
	Password string
	// Role is the raw role string from the request; empty defaults to customer.
	Role string
}

// AuthService implements registration and login on top of the credential store.
type AuthService interface {
	// Register opens an account and returns a signed bearer token plus the
	// sanitized user, so new clients are logged in immediately.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// sanitized user. Wrong password and unknown email are indistinguishable
	// to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
