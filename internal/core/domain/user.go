package domain

import (
	"fmt"
	"time"
)

// Role is a closed category attached to every user. The string values are
// part of the API contract with clients and must not be renamed.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleQA       Role = "qa"
)

// ParseRole validates a raw role string against the closed set. An empty
// value defaults to customer; anything else unknown is rejected.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case "":
		return RoleCustomer, nil
	case RoleAdmin, RoleCustomer, RoleManager, RoleQA:
		return Role(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
}

// User models an account in the store: customers, back-office staff and admins.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile,omitempty"`
	Address      string    `json:"address,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to hand to transport layers: identical to the
// user but guaranteed to carry no credential material.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
