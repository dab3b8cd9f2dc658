package items

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec(`insert into items`).
		WithArgs("i1", "a@b.c", "Mug", 9.5, "", "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPGStore(db)
	item := &Item{ID: "i1", Owner: "a@b.c", Name: "Mug", Price: 9.5, CreatedAt: now}
	if err := store.Create(context.Background(), item); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGStoreListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "owner", "name", "price", "description", "image_url", "created_at"}).
		AddRow("i1", "a@b.c", "Mug", 9.5, "", "", now).
		AddRow("i2", "a@b.c", "Plate", 4.0, "flat", "", now)
	mock.ExpectQuery(`select id, owner, name, price, description, image_url, created_at`).
		WithArgs("a@b.c").
		WillReturnRows(rows)

	store := NewPGStore(db)
	list, err := store.ListByOwner(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list))
	}
	if list[1].Description != "flat" {
		t.Fatalf("unexpected item %+v", list[1])
	}
}

func TestPGStoreDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`delete from items`).
		WithArgs("i1", "a@b.c").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPGStore(db)
	if err := store.Delete(context.Background(), "a@b.c", "i1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestPGStoreDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`delete from items`).
		WithArgs("missing", "a@b.c").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewPGStore(db)
	if err := store.Delete(context.Background(), "a@b.c", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
