package utils // helpers for API key secret generation and hashing

import (
	"crypto/rand"   // secure random number generation
	"crypto/sha256" // SHA-256 hashing for key secrets
	"encoding/hex"  // hex encoding of secrets and digests
)

// apiKeyBytes is the entropy of a generated secret.  32 random bytes
// hex-encode to a 64 character string handed to the caller once.
const apiKeyBytes = 32

// NewAPIKeySecret returns a fresh plaintext API key secret.  The
// secret is shown to the caller exactly once at creation; only its
// digest is persisted.
func NewAPIKeySecret() (string, error) {
	return randomHex(apiKeyBytes)
}

// HashAPIKeySecret returns the SHA-256 hex digest of a plaintext
// secret.  The digest is deterministic so a presented key can be
// checked against the stored hash without keeping the plaintext.
func HashAPIKeySecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
