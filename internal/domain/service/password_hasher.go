// Package service declares the ports the use cases need from infrastructure.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. A malformed hash is a
	// mismatch, never an error, and the comparison is constant-time.
	Check(password, hash string) bool
}
