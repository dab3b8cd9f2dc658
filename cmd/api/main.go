package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"shopapi.dev/internal/auth"
	"shopapi.dev/internal/config"
	"shopapi.dev/internal/httpapi"
	"shopapi.dev/internal/items"
	"shopapi.dev/internal/mail"
	"shopapi.dev/internal/obs"
)

var (
	version = "1.2.0"
	commit  = "none"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	var (
		userStore auth.UserStore
		itemStore items.Store
	)
	if db != nil {
		userStore = auth.NewPGStore(db)
		itemStore = items.NewPGStore(db)
	} else {
		log.Println("no SHOPAPI_PG_DSN configured, using in-memory stores")
		userStore = auth.NewMemoryStore()
		itemStore = items.NewMemoryStore()
	}

	var challengeStore auth.ChallengeStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		challengeStore = auth.NewRedisChallengeStore(rdb)
	} else {
		challengeStore = auth.NewMemoryChallengeStore()
	}

	var mailer mail.Mailer
	if cfg.SMTPHost != "" {
		mailer, err = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom, cfg.EmailPassword)
		if err != nil {
			log.Fatalf("mailer: %v", err)
		}
	} else {
		log.Println("no SHOPAPI_SMTP_HOST configured, OTP mail goes to the log")
		mailer = mail.NewLogMailer()
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, auth.WithTokenTTL(cfg.TokenTTL))
	if err != nil {
		log.Fatalf("token issuer: %v", err)
	}
	otp := auth.NewOTPService(challengeStore, mailer, auth.WithChallengeTTL(cfg.OTPTTL))
	authSvc := auth.NewService(userStore, otp, tokens, auth.NewHasher(cfg.BcryptCost))
	itemSvc := items.NewService(itemStore)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		seedAdmin(authSvc, cfg.AdminEmail, cfg.AdminPassword)
	}

	api := httpapi.New(authSvc, itemSvc, cfg.UploadDir, httpapi.ReadyProbe{DB: db}, version)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting shopapi %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}

// seedAdmin creates the configured bootstrap admin account when absent.
func seedAdmin(svc *auth.Service, email, password string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := svc.Signup(ctx, email, password, string(auth.RoleAdmin))
	switch {
	case err == nil:
		log.Printf("created initial admin user: %s", email)
	case errors.Is(err, auth.ErrEmailTaken):
		// already seeded
	default:
		log.Printf("admin seed failed: %v", err)
	}
}
