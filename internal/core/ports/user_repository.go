package ports

import (
	"context"

	"github.com/leaflink/storefront/internal/core/domain"
)

// UserRepository is the credential store: the persistence boundary for
// identity records. Email uniqueness is enforced here (backed by a unique
// index); role values are validated before they reach this interface.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Create persists a new user whose PasswordHash is already derived.
	// Returns domain.ErrUserExists when the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateProfile replaces the mutable profile attributes (name, email,
	// mobile, address) of the identified user.
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdatePassword replaces the stored hash. The plaintext never crosses
	// this boundary.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// UpdateRole replaces the role. Authorization is the caller's problem;
	// this operation performs none.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	// Delete removes the record, returning domain.ErrUserNotFound when absent.
	Delete(ctx context.Context, id string) error
}
