package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt hash from a plaintext password.
//
// bcrypt is deliberately slow and incorporates a per-hash random salt, which
// makes the stored credential resistant to brute-force and rainbow-table
// attacks. The default cost is used.
//
// Returns the hash in bcrypt's standard encoded form, or an error if the
// password exceeds bcrypt's length limit.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
//
// The comparison is performed by bcrypt itself and does not leak where a
// mismatch occurs. Any error from the library (wrong password, malformed
// hash) is treated as a mismatch.
func CheckPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
