package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"shopapi.dev/internal/mail"
	"shopapi.dev/internal/obs"
)

const (
	defaultChallengeTTL = 10 * time.Minute

	// Codes are drawn uniformly from [100000, 999999]: always six digits.
	otpFloor = 100000
	otpSpan  = 900000
)

// Challenge is the single live OTP record kept per identity.
type Challenge struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ChallengeStore persists at most one live challenge per identity. Upsert
// atomically replaces any prior challenge for the same identity; the store is
// the sole serialization point for concurrent issuance.
type ChallengeStore interface {
	Upsert(ctx context.Context, email string, ch Challenge) error
	Get(ctx context.Context, email string) (Challenge, error)
	Delete(ctx context.Context, email string) error
}

// OTPService owns the challenge lifecycle: generation, expiry-aware
// verification and single-use invalidation.
type OTPService struct {
	store  ChallengeStore
	mailer mail.Mailer
	ttl    time.Duration
	now    func() time.Time
}

// OTPOption configures an OTPService.
type OTPOption func(*OTPService)

// WithChallengeTTL overrides the default ten minute validity window.
func WithChallengeTTL(ttl time.Duration) OTPOption {
	return func(s *OTPService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithOTPClock overrides the time source (useful for tests).
func WithOTPClock(fn func() time.Time) OTPOption {
	return func(s *OTPService) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewOTPService wires a challenge store and the outbound mail channel.
func NewOTPService(store ChallengeStore, mailer mail.Mailer, opts ...OTPOption) *OTPService {
	svc := &OTPService{
		store:  store,
		mailer: mailer,
		ttl:    defaultChallengeTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Issue generates a fresh six digit code, replaces any live challenge for the
// identity and notifies the registered address. Delivery is best-effort: a
// failed send is logged but the challenge is live the moment it is stored.
// Callers must not forward the returned code to the requester.
func (s *OTPService) Issue(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", ErrInvalidInput
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}
	challenge := Challenge{
		Code:      code,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.store.Upsert(ctx, email, challenge); err != nil {
		return "", fmt.Errorf("store challenge: %w", err)
	}

	subject := "Your OTP Code"
	body := fmt.Sprintf("Your OTP for password reset is: %s. It is valid for %d minutes.", code, int(s.ttl.Minutes()))
	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		obs.MailSend("failure")
		obs.LogEvent(map[string]any{
			"level": "error",
			"msg":   "otp mail delivery failed",
			"to":    email,
			"error": err.Error(),
		})
	} else {
		obs.MailSend("success")
	}
	return code, nil
}

// Verify reports whether code matches the live challenge for the identity and
// the validity window has not passed. It has no side effects; invalidation is
// a separate explicit step.
func (s *OTPService) Verify(ctx context.Context, email, code string) bool {
	email = NormalizeEmail(email)
	if email == "" || code == "" {
		return false
	}
	challenge, err := s.store.Get(ctx, email)
	if err != nil {
		return false
	}
	// Codes compare as opaque strings, constant-time.
	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(code)) != 1 {
		return false
	}
	if s.now().UTC().After(challenge.ExpiresAt) {
		return false
	}
	return true
}

// Invalidate deletes the live challenge so a verified code cannot be replayed
// within its remaining window.
func (s *OTPService) Invalidate(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}
	return s.store.Delete(ctx, email)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return strconv.FormatInt(n.Int64()+otpFloor, 10), nil
}
