package crypto

import (
	"context"
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword(context.Background(), "s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !ComparePassword(hash, "s3cret-pass") {
		t.Fatal("correct password should compare true")
	}
	if ComparePassword(hash, "wrong-pass") {
		t.Fatal("wrong password should compare false")
	}
}

func TestSecureCompare(t *testing.T) {
	if !SecureCompare("amk_abc", "amk_abc") {
		t.Fatal("equal secrets should compare true")
	}
	if SecureCompare("amk_abc", "amk_abd") {
		t.Fatal("different secrets should compare false")
	}
	if SecureCompare("", "x") {
		t.Fatal("empty vs non-empty should compare false")
	}
}
