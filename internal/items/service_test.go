package items

import (
	"context"
	"errors"
	"testing"
)

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	item, err := svc.Add(ctx, "a@b.c", Input{Name: "  Mug  ", Price: 9.5})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if item.ID == "" {
		t.Fatal("expected a generated id")
	}
	if item.Name != "Mug" {
		t.Fatalf("expected trimmed name, got %q", item.Name)
	}

	list, err := svc.ListByOwner(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 1 || list[0].ID != item.ID {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestListIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	if _, err := svc.Add(ctx, "a@b.c", Input{Name: "Mug", Price: 9.5}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, "x@y.z", Input{Name: "Plate", Price: 4}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := svc.ListByOwner(ctx, "x@y.z")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Plate" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	cases := []struct {
		name  string
		owner string
		in    Input
	}{
		{"empty owner", "", Input{Name: "Mug", Price: 1}},
		{"empty name", "a@b.c", Input{Name: "   ", Price: 1}},
		{"negative price", "a@b.c", Input{Name: "Mug", Price: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, tc.owner, tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	item, err := svc.Add(ctx, "a@b.c", Input{Name: "Mug", Price: 9.5})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Delete(ctx, "x@y.z", item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign owner: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "a@b.c", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "a@b.c", item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, err := svc.ListByOwner(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}
