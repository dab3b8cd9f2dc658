package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"shopapi.dev/migrations"
)

func main() {
	var (
		dsn  = flag.String("dsn", os.Getenv("SHOPAPI_PG_DSN"), "Postgres DSN")
		down = flag.Bool("down", false, "roll back the most recent migration instead of migrating up")
	)
	flag.Parse()

	if *dsn == "" {
		log.Fatal("migrate: -dsn or SHOPAPI_PG_DSN is required")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		log.Fatalf("set dialect: %v", err)
	}

	if *down {
		if err := goose.DownContext(ctx, db, "."); err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		log.Println("rolled back one migration")
		return
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		log.Fatalf("migrate up: %v", err)
	}
	log.Println("migrations applied")
}
