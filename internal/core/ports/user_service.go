package ports

import (
	"context"

	"github.com/leaflink/storefront/internal/core/domain"
)

// ProfileUpdateInput carries the mutable profile fields. Empty strings mean
// "leave unchanged", matching the partial-update behaviour of the API.
type ProfileUpdateInput struct {
	Name     string
	Email    string
	Mobile   string
	Address  string
	Password string
}

// UserService covers profile management and the admin-only account operations.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	ListProfiles(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in ProfileUpdateInput) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
