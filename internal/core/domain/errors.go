package domain

import "errors"

// Authentication / authorization failures. Each kind is a distinct sentinel
// so the HTTP error handler stays the single point translating internal
// failures into response codes.
var (
	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password"; callers must never be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingToken: no bearer token on a protected request.
	ErrMissingToken = errors.New("not authorized, no token")

	// ErrInvalidToken: bad signature, expired, or malformed payload.
	ErrInvalidToken = errors.New("not authorized, invalid token")

	// ErrUnknownSubject: the token verified but its subject no longer
	// exists (account deleted after issuance).
	ErrUnknownSubject = errors.New("not authorized, user not found")

	// ErrUnauthenticated: a role gate ran without a prior authentication
	// step. Unreachable when the router is wired correctly; fails safe.
	ErrUnauthenticated = errors.New("authentication required")

	ErrForbidden       = errors.New("not authorized")
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)

// Store-level failures.
var (
	ErrInvalidInput     = errors.New("invalid user data")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidRole      = errors.New("invalid role")
	ErrItemNotFound     = errors.New("item not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPaymentNotFound  = errors.New("payment not found")
)
