package sasl

import (
	"crypto/rand"
	"encoding/base64"
	"hash"
	"io"

	"github.com/rhymu8354/sasl/internal/pbkdf2x"
	"github.com/rhymu8354/sasl/internal/scramhash"
	"github.com/rhymu8354/sasl/internal/scramwire"
)

// nonceLength is the number of characters generated for a SCRAM client
// nonce. RFC 5802's examples use 24-character nonces and say nothing
// about the required length; 24 is what the examples use, so that's what
// this package generates.
const nonceLength = 24

// printables is the dictionary nonce characters are drawn from: the
// printable ASCII graphic set minus comma, so a nonce can never be
// mistaken for a wire delimiter.
const printables = `!"#$%&'()*+-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\]^_` + "`" + `abcdefghijklmnopqrstuvwxyz{|}~`

// scramStep tracks where a Scram exchange is in its three-turn dance.
type scramStep int

const (
	stepClientNonce scramStep = iota
	stepServerChallenge
	stepServerSignature
	stepDone
)

// NonceSource supplies the random bytes a Scram mechanism turns into a
// client nonce. The default, used unless overridden with
// WithNonceSource, reads from crypto/rand. Tests override it to pin a
// nonce and reproduce RFC 5802's worked example.
type NonceSource interface {
	Generate(buf []byte)
}

type cryptoRandNonceSource struct{}

func (cryptoRandNonceSource) Generate(buf []byte) {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		// crypto/rand.Reader does not fail on any platform Go supports;
		// if it somehow did, falling back to zero bytes keeps Generate
		// from panicking inside a mechanism that must never crash its
		// caller (see the package's error handling discipline).
		for i := range buf {
			buf[i] = 0
		}
	}
}

// Scram implements the SCRAM mechanism (RFC 5802): a three-turn
// challenge/response exchange that derives authentication proof from a
// password without transmitting it and lets the client verify the server
// knows the same shared secret.
type Scram struct {
	diag *diagnosticsSender

	suite       scramhash.Suite
	normalize   func(string) []byte
	nonceSource NonceSource

	step scramStep

	authnID            string
	normalizedPassword []byte

	clientNonce            string
	clientFirstMessageBare string
	clientFirstMessage     string
	encodedGS2Header       string

	expectedServerSignature []byte

	succeeded bool
	faulted   bool

	credentialsSet bool
}

var _ Mechanism = (*Scram)(nil)
var _ Resettable = (*Scram)(nil)

// ScramOption configures optional behavior of a Scram mechanism at
// construction time.
type ScramOption func(*Scram)

// WithNonceSource overrides the source of random bytes used to generate
// the client nonce. Mostly useful for tests that need to reproduce a
// fixed nonce, such as RFC 5802's worked example.
func WithNonceSource(source NonceSource) ScramOption {
	return func(s *Scram) { s.nonceSource = source }
}

// WithPasswordNormalizer overrides the function applied to the secret
// before it is salted and hashed. The default is the identity function
// (ASCII pass-through), per spec: full SASLprep is a permitted extension;
// see internal/saslprep for a precis-backed profile that can be passed
// here.
func WithPasswordNormalizer(normalize func(string) []byte) ScramOption {
	return func(s *Scram) {
		if normalize != nil {
			s.normalize = normalize
		}
	}
}

// NewScram constructs a Scram mechanism bound to the given hash suite
// (scramhash.SHA1, scramhash.SHA256, scramhash.SHA512, or a caller-
// supplied Suite for some other hash function entirely — nothing about
// the algorithm is hard-wired to SHA-1).
func NewScram(suite scramhash.Suite, opts ...ScramOption) *Scram {
	s := &Scram{
		diag:        newDiagnosticsSender("Scram"),
		suite:       suite,
		normalize:   identityNormalize,
		nonceSource: cryptoRandNonceSource{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewScramWithHashFunction is the raw configuration point named in RFC
// 5802's description of SCRAM: a hash function plus its block size (in
// bytes) and digest size (in bits, must be a multiple of 8). Prefer
// NewScram with one of the scramhash suites unless the embedder really
// needs a hash function outside that registry.
func NewScramWithHashFunction(newHash func() hash.Hash, blockSizeBytes, digestSizeBits int, opts ...ScramOption) *Scram {
	suite := scramhash.Suite{
		Name:           "SCRAM",
		New:            newHash,
		BlockSizeBytes: blockSizeBytes,
		DigestSizeBits: digestSizeBits,
	}
	return NewScram(suite, opts...)
}

func identityNormalize(s string) []byte { return []byte(s) }

func (s *Scram) SubscribeToDiagnostics(sink DiagnosticSink, minLevel int) Unsubscribe {
	return s.diag.SubscribeToDiagnostics(sink, minLevel)
}

// SetCredentials supplies the authentication material for a fresh
// attempt: it draws a new client nonce, rebuilds the cached
// client-first-message, and re-initializes the step, succeeded, and
// faulted state, so an embedder can retry a failed exchange by calling
// SetCredentials again rather than constructing a new Scram.
func (s *Scram) SetCredentials(secret, authnID, authzID string) {
	s.authnID = authnID
	s.normalizedPassword = s.normalize(secret)

	nonceBuf := make([]byte, nonceLength)
	s.nonceSource.Generate(nonceBuf)
	for i, b := range nonceBuf {
		nonceBuf[i] = printables[int(b)%len(printables)]
	}
	s.clientNonce = string(nonceBuf)

	s.clientFirstMessageBare = scramwire.ClientFirstMessageBare(s.authnID, s.clientNonce)
	gs2Header := scramwire.GS2Header(authzID)
	s.clientFirstMessage = gs2Header + s.clientFirstMessageBare
	s.encodedGS2Header = base64.StdEncoding.EncodeToString([]byte(gs2Header))

	s.expectedServerSignature = nil
	s.step = stepClientNonce
	s.succeeded = false
	s.faulted = false
	s.credentialsSet = true
}

// GetInitialResponse returns the client-first-message. Whichever of
// GetInitialResponse or the first Proceed call the caller uses to send
// it, the other is a no-op on the wire; the cached message is identical
// either way.
func (s *Scram) GetInitialResponse() string {
	if !s.credentialsSet {
		return ""
	}
	s.diag.send(0, "C: AUTH SCRAM* "+s.clientFirstMessage)
	return s.clientFirstMessage
}

// Proceed advances the SCRAM state machine by one turn: ClientNonce ->
// ServerChallenge -> ServerSignature -> Done.
//
// The first call, from the ClientNonce step, always emits the cached
// client-first-message and ignores its argument — it does not process
// server content. A caller that already sent the client-first-message via
// GetInitialResponse (because the outer protocol allows an initial
// response) must still make one Proceed call to advance past ClientNonce
// before feeding it the server's real first message; that call's return
// value duplicates what was already sent and can be discarded.
func (s *Scram) Proceed(message string) string {
	if s.faulted || !s.credentialsSet {
		return ""
	}
	switch s.step {
	case stepClientNonce:
		s.step = stepServerChallenge
		s.diag.send(0, "C: AUTH SCRAM* "+s.clientFirstMessage)
		return s.clientFirstMessage

	case stepServerChallenge:
		return s.handleServerFirst(message)

	case stepServerSignature:
		s.step = stepDone
		expected := "v=" + base64.StdEncoding.EncodeToString(s.expectedServerSignature)
		s.succeeded = message == expected
		return ""

	default: // stepDone
		return ""
	}
}

func (s *Scram) handleServerFirst(message string) string {
	parsed, err := scramwire.ParseServerFirst(message, s.clientNonce)
	if err != nil {
		s.faulted = true
		return ""
	}

	salt, err := base64.StdEncoding.DecodeString(parsed.SaltB64)
	if err != nil {
		s.faulted = true
		return ""
	}

	s.step = stepServerSignature

	dkLen := s.suite.DigestSizeBytes()
	saltedPassword := pbkdf2x.Key(s.suite.New, s.normalizedPassword, salt, parsed.Iterations, dkLen)

	clientKey := s.suite.HMAC(saltedPassword, []byte("Client Key"))
	storedKey := s.suite.Hash(clientKey)

	clientFinalNoProof := scramwire.ClientFinalMessageWithoutProof(s.encodedGS2Header, parsed.ServerNonce)
	authMessage := scramwire.AuthMessage(s.clientFirstMessageBare, message, clientFinalNoProof)

	clientSignature := s.suite.HMAC(storedKey, authMessage)
	clientProof := make([]byte, len(clientKey))
	for i := range clientProof {
		clientProof[i] = clientKey[i] ^ clientSignature[i]
	}

	serverKey := s.suite.HMAC(saltedPassword, []byte("Server Key"))
	s.expectedServerSignature = s.suite.HMAC(serverKey, authMessage)

	s.diag.send(0, "C: "+clientFinalNoProof+",p=*******")
	return clientFinalNoProof + ",p=" + base64.StdEncoding.EncodeToString(clientProof)
}

// Succeeded reports whether the server's final message matched the
// expected signature computed from the shared secret.
func (s *Scram) Succeeded() bool { return s.succeeded }

// Faulted reports whether the server sent a malformed challenge or a
// nonce not prefixed by the client's nonce. Once true, every subsequent
// Proceed call returns the empty string and Succeeded can never become
// true.
func (s *Scram) Faulted() bool { return s.faulted }

// Name returns the underlying hash suite's SCRAM mechanism name, e.g.
// "SCRAM-SHA-256".
func (s *Scram) Name() string { return s.suite.Name }

// Reset clears the succeeded and faulted flags but does not rewind the
// step or regenerate the client nonce. This is deliberately narrow: an
// embedder that wants to retry the exchange from scratch should call
// SetCredentials again, which re-initializes everything including the
// step and nonce. Reset exists only for the case where a caller wants to
// clear a stale outcome flag without disturbing an in-progress exchange.
func (s *Scram) Reset() {
	s.succeeded = false
	s.faulted = false
}
