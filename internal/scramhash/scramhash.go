// Package scramhash provides the named hash suites SCRAM binds its
// mechanism name to (SCRAM-SHA-1, SCRAM-SHA-256, SCRAM-SHA-512), and the
// HMAC construction SCRAM derives from whichever suite is selected.
package scramhash

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Suite bundles a hash function with the two sizes SCRAM's key derivation
// needs: the hash's block size in bytes (for HMAC key padding) and its
// digest size in bits (the derived-key length for PBKDF2 is
// DigestSizeBits/8 bytes).
type Suite struct {
	// Name is the SCRAM mechanism name, e.g. "SCRAM-SHA-256".
	Name string

	// New returns a fresh instance of the underlying hash function.
	New func() hash.Hash

	// BlockSizeBytes is the hash function's block size.
	BlockSizeBytes int

	// DigestSizeBits is the size, in bits, of a digest the hash function
	// produces. Must be a multiple of 8.
	DigestSizeBits int
}

// DigestSizeBytes is DigestSizeBits/8, the derived-key length SCRAM asks
// PBKDF2 for.
func (s Suite) DigestSizeBytes() int {
	return s.DigestSizeBits / 8
}

// HMAC computes HMAC(key, msg) using the suite's hash function.
func (s Suite) HMAC(key, msg []byte) []byte {
	mac := hmac.New(s.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// Hash computes H(msg) using the suite's hash function.
func (s Suite) Hash(msg []byte) []byte {
	h := s.New()
	h.Write(msg)
	return h.Sum(nil)
}

// SHA1 is the SCRAM-SHA-1 suite (RFC 5802's original mechanism).
var SHA1 = Suite{
	Name:           "SCRAM-SHA-1",
	New:            sha1.New,
	BlockSizeBytes: sha1.BlockSize,
	DigestSizeBits: sha1.Size * 8,
}

// SHA256 is the SCRAM-SHA-256 suite (RFC 7677).
var SHA256 = Suite{
	Name:           "SCRAM-SHA-256",
	New:            sha256.New,
	BlockSizeBytes: sha256.BlockSize,
	DigestSizeBits: sha256.Size * 8,
}

// SHA512 is the SCRAM-SHA-512 suite, used by servers that advertise it
// even though no RFC formally registers it.
var SHA512 = Suite{
	Name:           "SCRAM-SHA-512",
	New:            sha512.New,
	BlockSizeBytes: sha512.BlockSize,
	DigestSizeBits: sha512.Size * 8,
}
