package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGStoreFindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow("u1", "a@b.c", "$2a$hash", "customer", now, now)
	mock.ExpectQuery(`select id, email, password_hash, role, created_at, updated_at from users`).
		WithArgs("a@b.c").
		WillReturnRows(rows)

	store := NewPGStore(db)
	u, err := store.FindByEmail(context.Background(), "A@B.C")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u.Email != "a@b.c" || u.Role != RoleCustomer {
		t.Fatalf("unexpected user %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreFindByEmailMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`select id, email, password_hash, role, created_at, updated_at from users`).
		WithArgs("nobody@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at", "updated_at"}))

	store := NewPGStore(db)
	if _, err := store.FindByEmail(context.Background(), "nobody@b.c"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`insert into users`).
		WithArgs(sqlmock.AnyArg(), "a@b.c", "$2a$hash", RoleCustomer).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPGStore(db)
	u := &User{Email: "A@B.C", PasswordHash: "$2a$hash", Role: RoleCustomer}
	if err := store.Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("Create must assign an id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`insert into users`).
		WithArgs(sqlmock.AnyArg(), "a@b.c", "$2a$hash", RoleCustomer).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	store := NewPGStore(db)
	u := &User{Email: "a@b.c", PasswordHash: "$2a$hash", Role: RoleCustomer}
	if err := store.Create(context.Background(), u); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestPGStoreUpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`update users set password_hash`).
		WithArgs("a@b.c", "$2a$new").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPGStore(db)
	changed, err := store.UpdatePassword(context.Background(), "a@b.c", "$2a$new")
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 row changed, got %d", changed)
	}
}

func TestPGStoreUpdatePasswordMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`update users set password_hash`).
		WithArgs("nobody@b.c", "$2a$new").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewPGStore(db)
	changed, err := store.UpdatePassword(context.Background(), "nobody@b.c", "$2a$new")
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if changed != 0 {
		t.Fatalf("expected 0 rows changed, got %d", changed)
	}
}
