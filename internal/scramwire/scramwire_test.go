package scramwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseServerFirst_Valid(t *testing.T) {
	got, err := ParseServerFirst("r=abc123,s=c2FsdA==,i=4096", "abc123")
	require.NoError(t, err)
	require.Equal(t, ServerFirst{ServerNonce: "abc123", SaltB64: "c2FsdA==", Iterations: 4096}, got)
}

func TestParseServerFirst_IgnoresUnknownKeys(t *testing.T) {
	got, err := ParseServerFirst("r=abc123,s=c2FsdA==,i=4096,x=whatever", "abc123")
	require.NoError(t, err)
	require.Equal(t, 4096, got.Iterations)
}

func TestParseServerFirst_ShortAttributeFaults(t *testing.T) {
	_, err := ParseServerFirst("x", "abc123")
	require.ErrorIs(t, err, ErrMalformedAttribute)
}

func TestParseServerFirst_MissingEqualsFaults(t *testing.T) {
	_, err := ParseServerFirst("rX=abc123,s=c2FsdA==,i=4096", "abc123")
	require.ErrorIs(t, err, ErrMalformedAttribute)
}

func TestParseServerFirst_NonceMismatchFaults(t *testing.T) {
	_, err := ParseServerFirst("r=somethingelse,s=c2FsdA==,i=4096", "abc123")
	require.ErrorIs(t, err, ErrNonceMismatch)
}

func TestParseServerFirst_BadIterationsFaults(t *testing.T) {
	_, err := ParseServerFirst("r=abc123,s=c2FsdA==,i=nope", "abc123")
	require.ErrorIs(t, err, ErrInvalidIterations)

	_, err = ParseServerFirst("r=abc123,s=c2FsdA==,i=0", "abc123")
	require.ErrorIs(t, err, ErrInvalidIterations)
}

func TestParseServerFirst_MissingNonceFaults(t *testing.T) {
	_, err := ParseServerFirst("s=c2FsdA==,i=4096", "abc123")
	require.ErrorIs(t, err, ErrMalformedAttribute)
}

func TestClientFirstMessageBare(t *testing.T) {
	require.Equal(t, "n=bob,r=nonceValue", ClientFirstMessageBare("bob", "nonceValue"))
}

func TestGS2Header(t *testing.T) {
	require.Equal(t, "n,,", GS2Header(""))
	require.Equal(t, "n,alex,", GS2Header("alex"))
}

func TestAuthMessage(t *testing.T) {
	got := AuthMessage("bare", "serverfirst", "finalnoproof")
	require.Equal(t, "bare,serverfirst,finalnoproof", string(got))
}
