package service

import (
	"strings"
	"testing"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	var h PasswordHasher

	for _, plaintext := range []string{"Secret123", "correct horse battery staple", "p"} {
		digest, err := h.Hash(plaintext)
		if err != nil {
			t.Fatalf("Hash(%q) returned error: %v", plaintext, err)
		}
		if digest == plaintext {
			t.Fatalf("digest equals plaintext")
		}
		if !h.Verify(plaintext, digest) {
			t.Fatalf("Verify(%q, hash) = false, want true", plaintext)
		}
	}
}

func TestPasswordHasher_Mismatch(t *testing.T) {
	var h PasswordHasher

	digest, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h.Verify("secret123", digest) {
		t.Fatalf("Verify accepted a different plaintext")
	}
	if h.Verify("", digest) {
		t.Fatalf("Verify accepted empty plaintext")
	}
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	var h PasswordHasher

	first, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same plaintext are identical; salt missing")
	}
}

func TestPasswordHasher_EmptyInput(t *testing.T) {
	var h PasswordHasher

	if _, err := h.Hash(""); err == nil {
		t.Fatalf("expected error for empty plaintext")
	}
}

func TestPasswordHasher_FixedCost(t *testing.T) {
	var h PasswordHasher

	digest, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	// bcrypt embeds the cost in the digest prefix: $2a$10$...
	if !strings.HasPrefix(digest, "$2a$10$") {
		t.Fatalf("unexpected digest prefix: %s", digest[:7])
	}
}
