// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// Derivation parameters. Hash and Verify share these constants; changing any
// of them invalidates every stored credential, so they are pinned by tests.
const (
	saltBytes  = 16
	iterations = 1000
	keyLength  = 64
)

// decoySalt is a fixed salt used to burn a full derivation when no account
// matches a login attempt, so the miss is not observable through timing.
const decoySalt = "0123456789abcdef0123456789abcdef"

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-SHA512.
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash generates a fresh random salt and derives the password digest.
// Both return values are hex encoded.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", errors.Wrap(err, "failed to generate salt")
	}

	salt := hex.EncodeToString(raw)

	return hex.EncodeToString(derive(password, salt)), salt, nil
}

// Verify re-derives the digest from (candidate, salt) and compares it to the
// expected digest without leaking the position of the first mismatching byte.
func (h *pbkdf2Hasher) Verify(candidate, salt, digest string) bool {
	derived := derive(candidate, salt)

	expected, err := hex.DecodeString(digest)
	if err != nil {
		// A stored digest that is not valid hex can never match; the
		// derivation above already consumed the usual time.
		return false
	}

	return subtle.ConstantTimeCompare(derived, expected) == 1
}

// VerifyMissingAccount performs a full derivation against the decoy salt and
// always fails. Callers use it to equalize the timing of "unknown email" with
// "wrong password".
func (h *pbkdf2Hasher) VerifyMissingAccount(candidate string) bool {
	derive(candidate, decoySalt)

	return false
}

// derive runs PBKDF2-SHA512 over the password with the hex-encoded salt,
// which is fed to the KDF as-is (the stored form is the input form).
func derive(password, salt string) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha512.New)
}
