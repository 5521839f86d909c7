// Package auth implements the credential and token primitives behind the
// register/login flow: bcrypt password hashing and HMAC-signed access tokens.
package auth

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is the bcrypt input limit. Passwords are truncated to
// this length before hashing AND before verification, so two passwords that
// agree on their first 72 bytes are treated as identical. This matches the
// hashes already in production and must not change without a migration.
const MaxPasswordBytes = 72

// HashPassword hashes a password with bcrypt at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
// It never returns an error; malformed hashes simply fail verification.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
