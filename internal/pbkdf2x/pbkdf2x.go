// Package pbkdf2x wraps golang.org/x/crypto/pbkdf2 behind the PRF-shaped
// contract SCRAM's key derivation needs, keeping the top-level sasl
// package free of a direct crypto import for this one step.
package pbkdf2x

import (
	"crypto/sha1"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// Key derives dkLen bytes from password and salt using iter rounds of
// PBKDF2 with the given PRF hash constructor.
func Key(newHash func() hash.Hash, password, salt []byte, iter, dkLen int) []byte {
	return pbkdf2.Key(password, salt, iter, dkLen, newHash)
}

// SaltedPassword is a convenience wrapper naming the SCRAM-specific call
// shape: Hi(Normalize(password), salt, i) from RFC 5802 §3.
func SaltedPassword(newHash func() hash.Hash, password, salt []byte, iter, dkLenBytes int) []byte {
	if newHash == nil {
		newHash = sha1.New
	}
	return Key(newHash, password, salt, iter, dkLenBytes)
}
