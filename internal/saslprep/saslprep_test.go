package saslprep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_PlainASCIIUnchanged(t *testing.T) {
	require.Equal(t, []byte("pencil"), Normalize("pencil"))
}

func TestNormalize_EmptyString(t *testing.T) {
	require.Equal(t, []byte(""), Normalize(""))
}
