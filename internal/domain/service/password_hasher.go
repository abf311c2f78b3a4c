// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the
// domain pure.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from a plaintext password. A fresh
	// random salt is embedded in the output, so two calls with the same
	// plaintext never produce the same hash.
	Hash(password string) (string, error)

	// Verify compares a plaintext password against a stored hash in constant
	// time. A simple mismatch is (false, nil); an error is returned only when
	// the stored hash is malformed or the hashing subsystem fails.
	Verify(password, hash string) (bool, error)
}
