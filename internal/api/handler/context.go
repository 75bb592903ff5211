package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/leaflink/storefront/internal/api/middleware"
	"github.com/leaflink/storefront/internal/core/domain"
)

// currentUser extracts the identity attached by the Authenticate middleware.
// Handlers behind the auth chain should never see a bare context, but the
// gate fails safe instead of assuming the wiring is right.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.Identity(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
