package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/leaflink/storefront/internal/core/domain"
)

// RequireRole authorizes an already-authenticated request against a fixed
// allow-list of roles. The list is bound at wiring time; the check is a pure
// predicate over the identity resolved by Authenticate.
//
// When no identity is present the gate fails with domain.ErrUnauthenticated
// rather than assuming the chain was wired correctly. A role mismatch fails
// with domain.ErrForbidden naming the roles the route demands; whether the
// identity itself was valid is not this gate's business.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
		names = append(names, string(r))
	}
	required := strings.Join(names, " or ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := Identity(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[user.Role]; !ok {
				return fmt.Errorf("%w, %s role required", domain.ErrForbidden, required)
			}
			return next(c)
		}
	}
}
