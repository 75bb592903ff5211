package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/auth"
	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

// UserService implements profile management and the admin account operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *UserService) ListProfiles(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

// UpdateProfile applies a partial update. Empty fields keep their current
// value. A password change is re-hashed; the plaintext goes no further.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in ports.ProfileUpdateInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Mobile != "" {
		user.Mobile = in.Mobile
	}
	if in.Address != "" {
		user.Address = in.Address
	}

	updated, err := s.repo.UpdateProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}

	return updated.Sanitized(), nil
}

// UpdateRole swaps the user's role. Authorization happens at the route; this
// only enforces that the value belongs to the closed role set.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, id, parsed)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("role", string(parsed)).Msg("role updated")
	return updated.Sanitized(), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
