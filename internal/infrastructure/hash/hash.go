// Package hash derives and verifies salted password hashes.
package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen = 16
	keyLen  = 32

	// OWASP-recommended floor for PBKDF2-HMAC-SHA256.
	defaultIterations = 600_000
)

// Hasher derives PBKDF2-SHA256 hashes with a fresh random salt per
// call. The hash and salt are stored as separate hex columns, which is
// why bcrypt's packed hash+salt format is not used here.
type Hasher struct {
	iterations int
}

func New(iterations int) *Hasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	return &Hasher{iterations: iterations}
}

// Hash returns the hex-encoded hash and salt for password. Two calls
// with the same password produce different pairs.
func (h *Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", "", err
	}
	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLen, sha256.New)

	return hex.EncodeToString(key), hex.EncodeToString(salt), nil
}

// Verify recomputes the hash for password under the stored salt and
// compares in constant time. Any decode failure yields false rather
// than an error, so callers cannot leak internals to a prober.
func (h *Hasher) Verify(password, storedHash, storedSalt string) bool {
	salt, err := hex.DecodeString(storedSalt)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(storedHash)
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, h.iterations, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1
}
