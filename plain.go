package sasl

import "strings"

// Plain implements the PLAIN mechanism (RFC 4616).
//
// The entire exchange is one message: authzID, authnID, and the secret
// joined by NUL octets. There is no challenge/response round trip, so
// Succeeded and Faulted are always false — PLAIN never learns the outcome
// of the exchange from the client side.
type Plain struct {
	diag *diagnosticsSender

	encoded         string
	credentialsSent bool
}

var _ Mechanism = (*Plain)(nil)

// NewPlain constructs a Plain mechanism with no credentials set.
// SetCredentials must be called before GetInitialResponse or Proceed
// produce anything useful.
func NewPlain() *Plain {
	return &Plain{diag: newDiagnosticsSender("Plain")}
}

func (p *Plain) SubscribeToDiagnostics(sink DiagnosticSink, minLevel int) Unsubscribe {
	return p.diag.SubscribeToDiagnostics(sink, minLevel)
}

// SetCredentials builds the PLAIN record authzID + NUL + authnID + NUL +
// secret and resets the one-shot "have we sent it yet" flag.
func (p *Plain) SetCredentials(secret, authnID, authzID string) {
	var b strings.Builder
	b.WriteString(authzID)
	b.WriteByte(0)
	b.WriteString(authnID)
	b.WriteByte(0)
	b.WriteString(secret)
	p.encoded = b.String()
	p.credentialsSent = false
}

// GetInitialResponse returns the PLAIN record. It does not mark the
// record as sent; whichever of GetInitialResponse or the first Proceed
// call the caller uses, the other is a no-op on the wire.
func (p *Plain) GetInitialResponse() string {
	p.diag.send(0, "C: AUTH PLAIN "+redactPlain(p.encoded))
	return p.encoded
}

// Proceed returns the PLAIN record on the first call and the empty string
// on every call after that.
func (p *Plain) Proceed(_ string) string {
	if p.credentialsSent {
		return ""
	}
	p.credentialsSent = true
	return p.encoded
}

// Succeeded always returns false; PLAIN never has positive evidence of
// authentication outcome from the client side.
func (p *Plain) Succeeded() bool { return false }

// Faulted always returns false; PLAIN has no protocol state to violate.
func (p *Plain) Faulted() bool { return false }

// Name returns "PLAIN".
func (p *Plain) Name() string { return "PLAIN" }

// redactPlain renders a PLAIN record for diagnostics with the secret
// field blanked out and NUL octets shown as the two printable characters
// \0, e.g. "alex\0bob\0*******".
func redactPlain(encoded string) string {
	parts := strings.SplitN(encoded, "\x00", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	parts[2] = "*******"
	return strings.Join(parts, `\0`)
}
