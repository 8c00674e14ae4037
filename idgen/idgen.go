// Package idgen generates identifiers and API-key material from a
// cryptographically secure random source.
package idgen

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/aimarket/mcore/consts"
)

const (
	defaultSize = 16
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// UUID generates a new version-4 UUID string.
func UUID() string {
	return uuid.NewString()
}

// RandomString generates an n-character alphanumeric string using a
// cryptographically secure random source. Suitable for secret material.
func RandomString(n int) string {
	return gonanoid.MustGenerate(consts.NumLowerUpper, n)
}

// APIKey generates an API key: the format prefix followed by a
// 64-character secure random alphanumeric string.
func APIKey() string {
	return consts.APIKeyPrefix + RandomString(consts.APIKeySecretSize)
}

// Must generate optional length nanoid
func Must(l ...int) string {
	size := getSize(l...)
	return gonanoid.Must(size)
}

// NanoID generate optional length nanoid, use const by default
func NanoID(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.NumLowerUpper, size)
}

// Lower generate optional length nanoid, use const by default
func Lower(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.Lowercase, size)
}

// Upper generate optional length nanoid, use const by default
func Upper(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.Uppercase, size)
}

// Number generate optional length nanoid, use const by default
func Number(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.Number, size)
}

// PrimaryKey generate primary key
func PrimaryKey(l ...int) func() string {
	size := consts.PrimaryKeySize
	if len(l) > 0 {
		size = l[0]
	}
	return func() string {
		return gonanoid.MustGenerate(consts.PrimaryKey, size)
	}
}
