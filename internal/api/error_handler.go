package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/leaflink/storefront/internal/api/metrics"
	"github.com/leaflink/storefront/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns the single point translating internal failure
// kinds into client-visible responses. Middleware and handlers raise domain
// sentinels; nothing else in the request path formats an error body.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// Authentication. ErrUnknownSubject is a distinct failure kind (the
	// subject was deleted after issuance) even though it currently shares
	// the 401 with token failures.
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrMissingToken):
		metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
		return http.StatusUnauthorized, domain.ErrMissingToken.Error()
	case errors.Is(err, domain.ErrInvalidToken):
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return http.StatusUnauthorized, domain.ErrInvalidToken.Error()
	case errors.Is(err, domain.ErrUnknownSubject):
		metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
		return http.StatusUnauthorized, domain.ErrUnknownSubject.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, domain.ErrUnauthenticated.Error()
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, domain.ErrTooManyAttempts.Error()

	// Authorization.
	case errors.Is(err, domain.ErrForbidden):
		metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
		return http.StatusForbidden, err.Error()

	// Store and validation failures.
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidStatusChange):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error (hash failures, store I/O, ...): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
