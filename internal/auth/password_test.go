package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("Pw1!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "Pw1!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !h.Check(hash, "Pw1!") {
		t.Fatal("expected matching password to verify")
	}
	if h.Check(hash, "other") {
		t.Fatal("expected different password to fail")
	}
}

func TestHashSaltsAreRandom(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of one password must differ")
	}
	if !h.Check(first, "same-password") || !h.Check(second, "same-password") {
		t.Fatal("both hashes must verify the original password")
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if _, err := h.Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestCheckMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Check(malformed, "Pw1!") {
			t.Fatalf("malformed hash %q must not verify", malformed)
		}
	}
}

func TestHasherCostFallsBackToDefault(t *testing.T) {
	h := NewHasher(99)
	hash, err := h.Hash("Pw1!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", cost)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
}
