// Package sasl implements client-side Simple Authentication and Security
// Layer (SASL) mechanisms for use by application-protocol clients (SMTP,
// IMAP, XMPP, AMQP, LDAP...) that negotiate authentication with a server by
// exchanging opaque messages.
//
// Note:
//   Most of the shape here was copied, with some modifications, from how
//   net/smtp and github.com/emersion/go-imap's sasl package structure their
//   client mechanisms. It would be nice if the standard library offered
//   something that could be shared across SMTP, IMAP, and whatever else
//   needs this.
package sasl

// Mechanism is the common interface satisfied by every client-side SASL
// mechanism implemented by this package: Plain, Login, and Scram.
//
// A Mechanism is not safe for concurrent use. SetCredentials,
// GetInitialResponse, Proceed, Succeeded, and Faulted must be externally
// serialized by the caller; independent Mechanism instances are
// independent.
type Mechanism interface {
	// SubscribeToDiagnostics registers sink to receive diagnostic messages
	// at or above minLevel. The returned Unsubscribe removes the
	// subscription; calling it more than once is a no-op.
	SubscribeToDiagnostics(sink DiagnosticSink, minLevel int) Unsubscribe

	// SetCredentials supplies the authentication material for this
	// attempt, replacing any previously set credentials. authzID may be
	// empty, meaning "act as the identity the server associates with the
	// credentials."
	SetCredentials(secret, authnID, authzID string)

	// GetInitialResponse returns the optional client-initiated payload
	// that may accompany the AUTH command. An empty string means the
	// mechanism has no initial response.
	GetInitialResponse() string

	// Proceed consumes one message from the server and returns the next
	// message to send. An empty return means there is no further client
	// message to send.
	Proceed(serverMessage string) string

	// Succeeded reports whether the mechanism has positive evidence that
	// the exchange authenticated the client. False is not negative
	// evidence.
	Succeeded() bool

	// Faulted reports whether the mechanism observed a protocol violation
	// from the server.
	Faulted() bool

	// Name returns the mechanism's SASL name, as used in the AUTH command
	// (e.g. "PLAIN", "LOGIN", "SCRAM-SHA-256").
	Name() string
}

// Resettable is implemented by mechanisms that support being returned to
// an initial state for re-use. Plain has no sequencing state worth
// resetting and does not implement it.
type Resettable interface {
	// Reset returns the mechanism to a state suitable for re-running the
	// exchange. See the Reset doc comment on each mechanism for exactly
	// what is and isn't cleared.
	Reset()
}
