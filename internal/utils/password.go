package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt digest from the given plaintext
// password.
//
// bcrypt generates a random salt on every call and embeds it in the digest,
// so hashing the same plaintext twice yields different digests and no
// separate salt storage is needed. The cost factor is fixed at
// [bcrypt.DefaultCost] to balance brute-force resistance against login
// latency; it is intentionally not configurable at the API boundary.
//
// Parameters:
//
//	plaintext - the password as received from the client
//
// Returns:
//
//	string - the bcrypt digest, safe to persist
//	error  - non-nil if the password exceeds bcrypt's length limit
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt digest.
//
// The salt embedded in the digest is used to recompute the hash; the
// plaintext is never logged or reconstructed.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
