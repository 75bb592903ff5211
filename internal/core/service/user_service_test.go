package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/auth"
	"github.com/leaflink/storefront/internal/core/domain"
	"github.com/leaflink/storefront/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.User{
		Name:         "Seeded",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_GetProfile_StripsHash(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "carol@example.com", "pw", domain.RoleCustomer)
	svc := NewUserService(repo, zerolog.Nop())

	got, err := svc.GetProfile(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.PasswordHash != "" {
		t.Fatalf("profile leaked password hash")
	}
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "carol@example.com", "pw", domain.RoleCustomer)
	svc := NewUserService(repo, zerolog.Nop())

	updated, err := svc.UpdateProfile(context.Background(), u.ID, ports.ProfileUpdateInput{
		Mobile: "0771234567",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Mobile != "0771234567" {
		t.Fatalf("mobile not updated: %q", updated.Mobile)
	}
	if updated.Email != "carol@example.com" {
		t.Fatalf("email should be unchanged, got %q", updated.Email)
	}
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "carol@example.com", "oldpass", domain.RoleCustomer)
	oldHash := repo.users[u.ID].PasswordHash
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.UpdateProfile(context.Background(), u.ID, ports.ProfileUpdateInput{
		Password: "newpass",
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	newHash := repo.users[u.ID].PasswordHash
	if newHash == oldHash {
		t.Fatalf("password hash unchanged")
	}
	if newHash == "newpass" {
		t.Fatalf("plaintext stored as hash")
	}
	if !auth.CheckPassword("newpass", newHash) {
		t.Fatalf("new hash does not verify")
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "alice@example.com", "pw", domain.RoleCustomer)
	svc := NewUserService(repo, zerolog.Nop())

	updated, err := svc.UpdateRole(context.Background(), u.ID, "manager")
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Fatalf("expected manager, got %q", updated.Role)
	}

	if _, err := svc.UpdateRole(context.Background(), u.ID, "owner"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
