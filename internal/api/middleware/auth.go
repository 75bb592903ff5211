package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/leaflink/storefront/internal/auth"
	"github.com/leaflink/storefront/internal/core/domain"
)

// identityKey is the echo context slot carrying the authenticated user.
const identityKey = "auth.identity"

// SubjectStore resolves a token subject to a live user record.
type SubjectStore interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Authenticate validates the bearer token on each request and attaches the
// resolved identity (hash-free) to the context. All failures are returned as
// domain sentinels, leaving translation to the central error handler:
//
//	no/malformed header  -> domain.ErrMissingToken
//	bad signature/expiry -> domain.ErrInvalidToken
//	subject deleted      -> domain.ErrUnknownSubject
//
// The subject lookup runs on every request, so role changes and account
// deletions take effect without waiting for the token to expire.
func Authenticate(tokens *auth.TokenManager, users SubjectStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return domain.ErrMissingToken
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrMissingToken
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return err
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrUnknownSubject
				}
				return err
			}

			c.Set(identityKey, user.Sanitized())
			return next(c)
		}
	}
}

// Identity returns the authenticated user attached by Authenticate.
func Identity(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(identityKey).(*domain.User)
	return user, ok && user != nil
}
