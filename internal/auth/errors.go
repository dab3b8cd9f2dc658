package auth

import "errors"

// Store-level sentinels.
var (
	ErrNotFound      = errors.New("auth: not found")
	ErrAlreadyExists = errors.New("auth: already exists")
	ErrNoChallenge   = errors.New("auth: no live challenge")
	ErrInvalidInput  = errors.New("auth: invalid input")
)

// Flow-level sentinels surfaced at the request boundary.
var (
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrInvalidRole        = errors.New("auth: invalid role")
	ErrInvalidOTP         = errors.New("auth: invalid or expired otp")
	ErrMissingPassword    = errors.New("auth: missing new password")
	ErrUpdateFailed       = errors.New("auth: password update failed")
	ErrUnauthenticated    = errors.New("auth: unauthenticated")
)

// Token validation failures.
var (
	ErrTokenExpired          = errors.New("auth: token expired")
	ErrTokenSignatureInvalid = errors.New("auth: token signature invalid")
	ErrTokenMalformed        = errors.New("auth: token malformed")
)
