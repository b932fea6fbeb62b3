// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying derivation function, keeping the domain pure.
//
// Derivation parameters (algorithm, iteration count, output length) are fixed
// constants of the implementation, shared between Hash and Verify; a mismatch
// is a programming error caught by tests, not handled at runtime.
type PasswordHasher interface {
	// Hash derives a salted digest from a plaintext password using a fresh
	// random salt. Digest and salt are hex encoded.
	Hash(password string) (digest, salt string, err error)

	// Verify re-derives the digest from (candidate, salt) and compares it to
	// the expected digest in constant time.
	Verify(candidate, salt, digest string) bool

	// VerifyMissingAccount performs a full derivation against a fixed decoy
	// salt and always returns false. Login flows call it when no account
	// matches, so "unknown email" and "wrong password" consume
	// indistinguishable wall-clock time.
	VerifyMissingAccount(candidate string) bool
}
