// Package id generates and validates resource identifiers.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Resource identifiers are 24-character lowercase hex strings (12 random
// bytes), the same shape clients already hold from the previous backend.
// Anything else is malformed input, not a missing resource.
const (
	idBytes  = 12
	idLength = 24
)

// New generates a new 24-hex-character resource identifier.
// Returns an error if the system has insufficient entropy.
func New() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// MustNew is like New but panics if generation fails.
// Use only where failure should crash the program (e.g. seeding).
func MustNew() string {
	s, err := New()
	if err != nil {
		panic(fmt.Sprintf("failed to generate id: %v", err))
	}
	return s
}

// IsValid reports whether candidate is a well-formed resource identifier:
// exactly 24 hex characters, either case. Empty strings are invalid.
func IsValid(candidate string) bool {
	if len(candidate) != idLength {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NewToken creates a prefixed opaque identifier for sessions and token IDs
// using NanoID. These never travel through the resource id validator, so
// the URL-safe alphabet is fine here.
// Format: prefix-nanoid (e.g. "sess-V1StGXR8_Z5jdHi6B-myT").
func NewToken(prefix string) (string, error) {
	s, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + s, nil
}
