// Package config loads service configuration from the environment and an
// optional .env file using Viper. The JWT secret and bcrypt cost live here and
// are handed to the auth constructors once at startup; business logic never
// reads the environment.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `mapstructure:"SHOPAPI_ADDR"`
	// DatabaseURL is the Postgres DSN; in-memory stores are used when empty.
	DatabaseURL string `mapstructure:"SHOPAPI_PG_DSN"`
	// RedisAddr selects the redis-backed OTP challenge store when set.
	RedisAddr string `mapstructure:"SHOPAPI_REDIS_ADDR"`
	// JWTSecret signs session tokens. Required.
	JWTSecret string `mapstructure:"SHOPAPI_JWT_SECRET"`
	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration `mapstructure:"SHOPAPI_TOKEN_TTL"`
	// OTPTTL is the password-reset challenge validity window.
	OTPTTL time.Duration `mapstructure:"SHOPAPI_OTP_TTL"`
	// BcryptCost is the adaptive password hashing cost factor (4-31).
	BcryptCost int `mapstructure:"SHOPAPI_BCRYPT_COST"`

	// SMTP relay for OTP delivery; log-only mail is used when host is empty.
	SMTPHost      string `mapstructure:"SHOPAPI_SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SHOPAPI_SMTP_PORT"`
	EmailFrom     string `mapstructure:"SHOPAPI_EMAIL_FROM"`
	EmailPassword string `mapstructure:"SHOPAPI_EMAIL_PASSWORD"`

	// UploadDir holds uploaded images served under /uploads/.
	UploadDir string `mapstructure:"SHOPAPI_UPLOAD_DIR"`

	// Optional admin account seeded at startup when absent.
	AdminEmail    string `mapstructure:"SHOPAPI_ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"SHOPAPI_ADMIN_PASSWORD"`
}

// Load reads .env if present, then overlays environment variables. Missing
// .env is ignored (CI, containers). Returns an error for invalid or missing
// required fields.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	v.SetDefault("SHOPAPI_ADDR", ":8080")
	v.SetDefault("SHOPAPI_PG_DSN", "")
	v.SetDefault("SHOPAPI_REDIS_ADDR", "")
	v.SetDefault("SHOPAPI_JWT_SECRET", "")
	v.SetDefault("SHOPAPI_TOKEN_TTL", "2h")
	v.SetDefault("SHOPAPI_OTP_TTL", "10m")
	v.SetDefault("SHOPAPI_BCRYPT_COST", 12)
	v.SetDefault("SHOPAPI_SMTP_HOST", "")
	v.SetDefault("SHOPAPI_SMTP_PORT", 587)
	v.SetDefault("SHOPAPI_EMAIL_FROM", "")
	v.SetDefault("SHOPAPI_EMAIL_PASSWORD", "")
	v.SetDefault("SHOPAPI_UPLOAD_DIR", "uploads")
	v.SetDefault("SHOPAPI_ADMIN_EMAIL", "")
	v.SetDefault("SHOPAPI_ADMIN_PASSWORD", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("config: SHOPAPI_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: SHOPAPI_JWT_SECRET must be set")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: SHOPAPI_BCRYPT_COST must be between 4 and 31")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 2 * time.Hour
	}
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 10 * time.Minute
	}

	return &cfg, nil
}
