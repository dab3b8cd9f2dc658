package auth

import (
	"context"
	"errors"
	"time"
)

// Service orchestrates the user-facing flows: signup, login, the OTP
// password-reset protocol, and the authorization check used by protected
// operations. All stateful collaborators are injected.
type Service struct {
	users  UserStore
	otp    *OTPService
	tokens *TokenIssuer
	hasher Hasher
}

func NewService(users UserStore, otp *OTPService, tokens *TokenIssuer, hasher Hasher) *Service {
	return &Service{
		users:  users,
		otp:    otp,
		tokens: tokens,
		hasher: hasher,
	}
}

// Signup registers a new account. The identity must be unused; the role
// defaults to customer when empty.
func (s *Service) Signup(ctx context.Context, email, password, role string) error {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return ErrInvalidInput
	}
	parsedRole, err := ParseRole(role)
	if err != nil {
		return err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user := &User{Email: email, PasswordHash: hash, Role: parsedRole}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost the race against a concurrent signup for the same identity.
		if errors.Is(err, ErrAlreadyExists) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Login verifies credentials and issues a session token. Unknown identity and
// wrong password are deliberately indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !s.hasher.Check(user.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.tokens.Issue(user.Email, user.Role)
}

// RequestPasswordReset issues an OTP challenge for a registered identity.
// ErrNotFound for unknown identities leaks account existence; the public
// contract keeps it that way (see the hardening note in DESIGN.md).
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return err
	}
	_, err := s.otp.Issue(ctx, email)
	return err
}

// CompletePasswordReset verifies the OTP, stores the re-hashed replacement
// credential, then consumes the challenge so the code cannot replay.
func (s *Service) CompletePasswordReset(ctx context.Context, email, code, newPassword string) error {
	email = NormalizeEmail(email)
	if !s.otp.Verify(ctx, email, code) {
		return ErrInvalidOTP
	}
	if newPassword == "" {
		return ErrMissingPassword
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	changed, err := s.users.UpdatePassword(ctx, email, hash)
	if err != nil {
		return err
	}
	if changed == 0 {
		return ErrUpdateFailed
	}
	return s.otp.Invalidate(ctx, email)
}

// Authorize validates an inbound bearer credential and yields the verified
// identity. Every validation failure collapses to ErrUnauthenticated.
func (s *Service) Authorize(ctx context.Context, bearer string) (Identity, error) {
	ident, err := s.tokens.Validate(bearer)
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}
	return ident, nil
}
