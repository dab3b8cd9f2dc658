package httpapi

import (
	"errors"
	"net/http"
	"time"

	"shopapi.dev/internal/audit"
	"shopapi.dev/internal/auth"
	"shopapi.dev/internal/obs"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type resetRequest struct {
	Email string `json:"email"`
}

type resetCompleteRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := a.auth.Signup(r.Context(), req.Email, req.Password, req.Role)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrEmailTaken):
		obs.AuthAttempt("signup", "denied")
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	case errors.Is(err, auth.ErrInvalidRole), errors.Is(err, auth.ErrInvalidInput):
		obs.AuthAttempt("signup", "denied")
		writeError(w, http.StatusBadRequest, "Invalid signup request")
		return
	default:
		obs.AuthAttempt("signup", "error")
		writeError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	obs.AuthAttempt("signup", "ok")
	_ = audit.LogEvent(r.Context(), "auth.signup", map[string]any{
		"email": auth.NormalizeEmail(req.Email),
	})
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "User registered successfully"})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, expiresAt, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			obs.AuthAttempt("login", "denied")
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		obs.AuthAttempt("login", "error")
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	obs.AuthAttempt("login", "ok")
	_ = audit.LogEvent(r.Context(), "auth.login", map[string]any{
		"email":      auth.NormalizeEmail(req.Email),
		"expires_at": expiresAt.Format(time.RFC3339),
	})
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

func (a *API) handleRequestResetOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req resetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := a.auth.RequestPasswordReset(r.Context(), req.Email)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrNotFound):
		obs.AuthAttempt("reset_request", "denied")
		writeError(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, auth.ErrInvalidInput):
		obs.AuthAttempt("reset_request", "denied")
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	default:
		obs.AuthAttempt("reset_request", "error")
		writeError(w, http.StatusInternalServerError, "Could not issue OTP")
		return
	}

	obs.AuthAttempt("reset_request", "ok")
	_ = audit.LogEvent(r.Context(), "auth.reset.requested", map[string]any{
		"email": auth.NormalizeEmail(req.Email),
	})
	writeJSON(w, http.StatusOK, map[string]any{"msg": "OTP sent to your email"})
}

func (a *API) handleResetPasswordOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req resetCompleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := a.auth.CompletePasswordReset(r.Context(), req.Email, req.OTP, req.NewPassword)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidOTP):
		obs.AuthAttempt("reset_complete", "denied")
		writeError(w, http.StatusBadRequest, "Invalid or expired OTP")
		return
	case errors.Is(err, auth.ErrMissingPassword):
		obs.AuthAttempt("reset_complete", "denied")
		writeError(w, http.StatusBadRequest, "Missing new password")
		return
	case errors.Is(err, auth.ErrUpdateFailed):
		obs.AuthAttempt("reset_complete", "error")
		writeError(w, http.StatusInternalServerError, "Password update failed")
		return
	default:
		obs.AuthAttempt("reset_complete", "error")
		writeError(w, http.StatusInternalServerError, "Password reset failed")
		return
	}

	obs.AuthAttempt("reset_complete", "ok")
	_ = audit.LogEvent(r.Context(), "auth.reset.completed", map[string]any{
		"email": auth.NormalizeEmail(req.Email),
	})
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Password reset successfully"})
}
