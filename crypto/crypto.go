// Package crypto provides credential hashing and comparison for stored
// secrets such as passwords and API-key material.
package crypto

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/aimarket/mcore/logging/logger"
)

const (
	bcryptCost = bcrypt.DefaultCost
)

// HashPassword hashes the provided password using bcrypt.
func HashPassword(ctx context.Context, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Errorf(ctx, "crypto.HashPassword error: %v", err)
		return "", err
	}
	return string(hash), nil
}

// ComparePassword compares the hashed password with the provided password.
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// HashSecret returns a hex-free sha256 digest of a secret, for storing
// API-key secrets that must remain comparable without bcrypt's cost.
func HashSecret(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// SecureCompare reports whether two secrets are equal in constant time.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare(HashSecret(a), HashSecret(b)) == 1
}
