package sasl

// Login implements the LOGIN mechanism
// (draft-murchison-sasl-login-00): a two-turn exchange where the server
// prompts for a username and then a password, each sent back as a raw
// string payload. authzID is accepted by SetCredentials for interface
// symmetry with the other mechanisms but is ignored; LOGIN has no concept
// of "act as a different identity."
type Login struct {
	diag *diagnosticsSender

	username string
	password string

	numChallenges int
}

var _ Mechanism = (*Login)(nil)
var _ Resettable = (*Login)(nil)

// NewLogin constructs a Login mechanism with no credentials set.
func NewLogin() *Login {
	return &Login{diag: newDiagnosticsSender("Login")}
}

func (l *Login) SubscribeToDiagnostics(sink DiagnosticSink, minLevel int) Unsubscribe {
	return l.diag.SubscribeToDiagnostics(sink, minLevel)
}

// SetCredentials stores authnID as the username and secret as the
// password for the next exchange, and restarts the challenge counter.
func (l *Login) SetCredentials(secret, authnID, _ string) {
	l.username = authnID
	l.password = secret
	l.numChallenges = 0
}

// GetInitialResponse always returns the empty string: LOGIN has no
// initial response, only the two server-prompted turns.
func (l *Login) GetInitialResponse() string {
	l.diag.send(0, "C: AUTH LOGIN")
	return ""
}

// Proceed returns the username on the first call, the password on the
// second, and the empty string on every call after that, regardless of
// what the server sent.
func (l *Login) Proceed(_ string) string {
	l.numChallenges++
	switch l.numChallenges {
	case 1:
		l.diag.send(0, "C: "+l.username)
		return l.username
	case 2:
		l.diag.send(0, "C: *******")
		return l.password
	default:
		return ""
	}
}

// Succeeded always returns false; LOGIN never learns the outcome from the
// client side.
func (l *Login) Succeeded() bool { return false }

// Faulted always returns false; LOGIN has no protocol state to violate.
func (l *Login) Faulted() bool { return false }

// Name returns "LOGIN".
func (l *Login) Name() string { return "LOGIN" }

// Reset zeroes the challenge counter so the next Proceed call starts the
// username/password sequence over, using the credentials most recently
// passed to SetCredentials.
func (l *Login) Reset() {
	l.numChallenges = 0
}
