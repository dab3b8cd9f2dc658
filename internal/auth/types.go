package auth

import (
	"strings"
	"time"
)

// Role restricts what protected operations an account may perform.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole validates a requested role. The empty string maps to the default
// customer role.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.TrimSpace(strings.ToLower(raw))) {
	case "":
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", ErrInvalidRole
	}
}

// User is an account record. Email is the unique, case-normalized identity;
// PasswordHash never holds the plaintext.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the verified subject carried by a validated session token.
type Identity struct {
	Email string
	Role  Role
}

// NormalizeEmail lower-cases and trims an identity so lookups are
// case-insensitive everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
