// Package saslprep offers an opt-in password normalizer built on
// golang.org/x/text/secure/precis, for embedders that need more than the
// ASCII pass-through the core Scram mechanism applies by default. It
// applies the PRECIS OpaqueString profile (RFC 8265, which supersedes
// SASLprep), not the RFC 4013 SASLprep profile itself.
package saslprep

import "golang.org/x/text/secure/precis"

// Normalize applies the OpaqueString profile of PRECIS (SASLprep's
// successor for passwords) to password, returning the normalized
// UTF-8 bytes. If normalization fails — e.g. the input contains
// characters the profile disallows — the original bytes are returned
// unchanged, since SASL normalization failures must not surface as
// errors across the Mechanism boundary (see the top-level package's
// error handling discipline).
func Normalize(password string) []byte {
	normalized, err := precis.OpaqueString.String(password)
	if err != nil {
		return []byte(password)
	}
	return []byte(normalized)
}
