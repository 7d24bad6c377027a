// Package auth provides password hashing and token issuing for the
// authentication flow.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// defaultIterations follows current OWASP guidance for PBKDF2-SHA256.
	defaultIterations = 600000
	saltBytes         = 16
	keyBytes          = 32
	hashMethod        = "pbkdf2:sha256"
)

// PasswordHasher derives and verifies salted PBKDF2-SHA256 password hashes.
// The iteration count is injectable so tests can run with a cheap work
// factor; stored hashes carry their own count, so verification is unaffected
// by later tuning.
type PasswordHasher struct {
	iterations int
}

// NewPasswordHasher creates a PasswordHasher with the default work factor.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{iterations: defaultIterations}
}

// NewPasswordHasherWithIterations creates a PasswordHasher with a custom
// iteration count. Intended for tests; do not lower the count in production.
func NewPasswordHasherWithIterations(iterations int) *PasswordHasher {
	return &PasswordHasher{iterations: iterations}
}

// Hash derives a salted hash from the plaintext password. The output is a
// self-contained string of the form
//
//	pbkdf2:sha256:600000$<salt-hex>$<hash-hex>
//
// which embeds the method, iteration count, and salt needed for verification.
func (p *PasswordHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("auth: generating salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plaintext), salt, p.iterations, keyBytes, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", hashMethod, p.iterations,
		hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// Verify reports whether the plaintext password matches the stored hash. The
// comparison is constant-time. A malformed stored hash verifies as false
// rather than returning a distinct error, matching the unified
// invalid-credentials behavior of the login flow.
func (p *PasswordHasher) Verify(stored, plaintext string) bool {
	method, iterations, salt, want, err := decodeHash(stored)
	if err != nil || method != hashMethod {
		return false
	}

	got := pbkdf2.Key([]byte(plaintext), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func decodeHash(stored string) (method string, iterations int, salt, hash []byte, err error) {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return "", 0, nil, nil, fmt.Errorf("auth: malformed password hash")
	}

	idx := strings.LastIndex(parts[0], ":")
	if idx < 0 {
		return "", 0, nil, nil, fmt.Errorf("auth: malformed hash method")
	}
	method = parts[0][:idx]

	iterations, err = strconv.Atoi(parts[0][idx+1:])
	if err != nil || iterations <= 0 {
		return "", 0, nil, nil, fmt.Errorf("auth: malformed iteration count")
	}

	salt, err = hex.DecodeString(parts[1])
	if err != nil {
		return "", 0, nil, nil, fmt.Errorf("auth: malformed salt: %w", err)
	}

	hash, err = hex.DecodeString(parts[2])
	if err != nil || len(hash) == 0 {
		return "", 0, nil, nil, fmt.Errorf("auth: malformed hash: %w", err)
	}

	return method, iterations, salt, hash, nil
}
