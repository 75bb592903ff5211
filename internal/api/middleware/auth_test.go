package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/leaflink/storefront/internal/auth"
	"github.com/leaflink/storefront/internal/core/domain"
)

type stubSubjectStore struct {
	users map[string]*domain.User
}

func (s *stubSubjectStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func newAuthFixture(t *testing.T) (*auth.TokenManager, *stubSubjectStore, string) {
	t.Helper()
	tm := auth.NewTokenManager("secret", time.Hour)
	store := &stubSubjectStore{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "alice@example.com", PasswordHash: "$2a$10$hash", Role: domain.RoleCustomer},
	}}
	token, err := tm.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tm, store, token
}

func runAuth(t *testing.T, tm *auth.TokenManager, store *stubSubjectStore, header string, next echo.HandlerFunc) (error, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tm, store)(next)
	return handler(c), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tm, store, token := newAuthFixture(t)

	called := false
	err, _ := runAuth(t, tm, store, "Bearer "+token, func(c echo.Context) error {
		called = true
		user, ok := Identity(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if user.ID != "u1" {
			t.Fatalf("wrong identity: %s", user.ID)
		}
		if user.PasswordHash != "" {
			t.Fatalf("identity carries password hash")
		}
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tm, store, _ := newAuthFixture(t)

	err, _ := runAuth(t, tm, store, "", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	tm, store, token := newAuthFixture(t)

	err, _ := runAuth(t, tm, store, "Token "+token, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	tm, store, _ := newAuthFixture(t)

	err, _ := runAuth(t, tm, store, "Bearer not-a-token", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tm, store, _ := newAuthFixture(t)

	expired, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("secret"))
	if signErr != nil {
		t.Fatalf("sign: %v", signErr)
	}

	err, _ := runAuth(t, tm, store, "Bearer "+expired, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticate_DeletedSubject(t *testing.T) {
	tm, store, token := newAuthFixture(t)
	delete(store.users, "u1")

	err, _ := runAuth(t, tm, store, "Bearer "+token, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("deleted subject must not be reported as an invalid token")
	}
}

// A role change must apply to tokens issued before the change: the token only
// carries the id, and the role is re-resolved from the store per request.
func TestAuthenticate_RoleChangeTakesEffectWithoutReissue(t *testing.T) {
	tm, store, token := newAuthFixture(t)

	chain := Authenticate(tm, store)(RequireRole(domain.RoleManager)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	call := func() error {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		return chain(e.NewContext(req, rec))
	}

	if err := call(); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("customer should be forbidden on manager route, got %v", err)
	}

	store.users["u1"].Role = domain.RoleManager

	if err := call(); err != nil {
		t.Fatalf("promoted user rejected with the same token: %v", err)
	}
}
