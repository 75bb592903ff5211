package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/auth"
	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

// LoginThrottle abstracts the brute-force guard (Redis). A nil throttle
// disables throttling entirely.
type LoginThrottle interface {
	// IsLocked reports whether the account has accumulated too many
	// recent failures.
	IsLocked(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, email string) error
	// Clear resets the failure count after a successful login.
	Clear(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *auth.TokenManager
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *auth.TokenManager, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, log: log}
}

// Register opens a new account and logs the caller straight in. The
// plaintext password is hashed before it reaches the repository and is never
// retained.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || email == "" || in.Password == "" {
		return "", nil, fmt.Errorf("%w: name, email and password are required", domain.ErrInvalidInput)
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return "", nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		Mobile:       in.Mobile,
		Address:      in.Address,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return token, created.Sanitized(), nil
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password take the same path out: the same error, and a burned hash
// comparison so the two cases cost the same.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if locked, err := s.isLocked(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
	} else if locked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			auth.BurnPassword(password)
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.clearFailures(ctx, email)
	s.log.Info().Str("user_id", user.ID).Msg("login successful")
	return token, user.Sanitized(), nil
}

func (s *AuthService) isLocked(ctx context.Context, email string) (bool, error) {
	if s.throttle == nil {
		return false, nil
	}
	return s.throttle.IsLocked(ctx, email)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) clearFailures(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Clear(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear login failures")
	}
}
