// Package scramwire parses and constructs the comma-separated
// attribute-value messages defined by RFC 5802 §7. The top-level Scram
// mechanism calls into it for all parsing and for most message
// construction; Scram itself only appends the ",p=" proof attribute and
// builds the "v=" verifier it compares the server's final message against.
package scramwire

import (
	"errors"
	"strconv"
	"strings"
)

// Errors returned by ParseServerFirst. The top-level Scram mechanism maps
// all of them to Faulted()=true without telling them apart; they exist as
// distinct values so callers of this package, such as its tests, can.
var (
	ErrMalformedAttribute = errors.New("scramwire: malformed attribute")
	ErrNonceMismatch      = errors.New("scramwire: server nonce does not begin with client nonce")
	ErrInvalidIterations  = errors.New("scramwire: invalid iteration count")
)

// ServerFirst holds the fields parsed out of a SCRAM server-first-message:
// r=<snonce>,s=<b64salt>,i=<iter>. Unrecognized keys are ignored, per
// RFC 5802.
type ServerFirst struct {
	ServerNonce string
	SaltB64     string
	Iterations  int
}

// ParseServerFirst splits message on ',' and interprets the r=, s=, and
// i= attributes. Every piece must have length >= 3 with '=' at index 1,
// per RFC 5802's generic attribute-value grammar; clientNonce is the
// nonce this client generated, and the server's r= value must have it as
// a prefix or the exchange is a nonce-substitution attack.
func ParseServerFirst(message, clientNonce string) (ServerFirst, error) {
	var out ServerFirst
	sawNonce := false
	for _, piece := range strings.Split(message, ",") {
		if len(piece) < 3 || piece[1] != '=' {
			return ServerFirst{}, ErrMalformedAttribute
		}
		key := piece[0]
		value := piece[2:]
		switch key {
		case 'r':
			if !strings.HasPrefix(value, clientNonce) {
				return ServerFirst{}, ErrNonceMismatch
			}
			out.ServerNonce = value
			sawNonce = true
		case 's':
			out.SaltB64 = value
		case 'i':
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return ServerFirst{}, ErrInvalidIterations
			}
			out.Iterations = n
		default:
			// forward-compatible: unrecognized keys are silently ignored.
		}
	}
	if !sawNonce {
		return ServerFirst{}, ErrMalformedAttribute
	}
	return out, nil
}

// ClientFirstMessageBare builds "n=<authnID>,r=<clientNonce>".
func ClientFirstMessageBare(authnID, clientNonce string) string {
	return "n=" + authnID + ",r=" + clientNonce
}

// GS2Header builds "n,<authzID>,", the no-channel-binding GS2 header.
func GS2Header(authzID string) string {
	return "n," + authzID + ","
}

// ClientFinalMessageWithoutProof builds "c=<encodedGS2Header>,r=<serverNonce>".
func ClientFinalMessageWithoutProof(encodedGS2Header, serverNonce string) string {
	return "c=" + encodedGS2Header + ",r=" + serverNonce
}

// AuthMessage concatenates the three parts that make up SCRAM's
// AuthMessage: clientFirstMessageBare + "," + serverFirstMessage + "," +
// clientFinalMessageWithoutProof.
func AuthMessage(clientFirstMessageBare, serverFirstMessage, clientFinalMessageWithoutProof string) []byte {
	return []byte(clientFirstMessageBare + "," + serverFirstMessage + "," + clientFinalMessageWithoutProof)
}
