package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/auth"
	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.nextID)
	copy.CreatedAt = time.Now().UTC()
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, user *domain.User) (*domain.User, error) {
	stored, ok := r.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Mobile = user.Mobile
	stored.Address = user.Address
	return cloneUser(stored), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	stored, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	stored.Role = role
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAuthService(repo ports.UserRepository, throttle LoginThrottle) *AuthService {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, tm, throttle, zerolog.Nop())
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	regToken, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role customer, got %q", user.Role)
	}
	if user.PasswordHash != "" {
		t.Fatalf("register response leaked password hash")
	}
	if regToken == "" {
		t.Fatalf("register did not issue a token")
	}

	token, logged, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if logged.ID != user.ID {
		t.Fatalf("login resolved wrong user: %s vs %s", logged.ID, user.ID)
	}

	// The token's subject must resolve back to the registered identity.
	subject, err := auth.NewTokenManager("test-secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("token subject %q does not match user id %q", subject, user.ID)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	in := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pw"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "pw",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_ExplicitRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Mia",
		Email:    "mia@example.com",
		Password: "pw",
		Role:     "manager",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("expected manager, got %q", user.Role)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongPw := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPw.Error() != noUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPw, noUser)
	}
}

type stubThrottle struct {
	locked   bool
	failures int
	cleared  int
}

func (s *stubThrottle) IsLocked(context.Context, string) (bool, error) { return s.locked, nil }
func (s *stubThrottle) RecordFailure(context.Context, string) error    { s.failures++; return nil }
func (s *stubThrottle) Clear(context.Context, string) error            { s.cleared++; return nil }

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{locked: true}
	svc := newTestAuthService(repo, throttle)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "ann@example.com", "pw"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ThrottleBookkeeping(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newTestAuthService(repo, throttle)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Ben", Email: "ben@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _ = svc.Login(context.Background(), "ben@example.com", "wrong")
	if throttle.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", throttle.failures)
	}

	if _, _, err := svc.Login(context.Background(), "ben@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if throttle.cleared != 1 {
		t.Fatalf("expected failures cleared on success, got %d", throttle.cleared)
	}
}
