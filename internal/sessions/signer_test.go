package sessions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("secret")
	value := s.Value("deadbeef")
	token, ok := s.Verify(value)
	require.True(t, ok)
	require.Equal(t, "deadbeef", token)
}

func TestSignerRejectsTampering(t *testing.T) {
	s := NewSigner("secret")
	value := s.Value("deadbeef")

	// flipping any single byte of the value must invalidate it
	for i := 0; i < len(value); i++ {
		b := []byte(value)
		b[i] ^= 0x01
		if _, ok := s.Verify(string(b)); ok {
			t.Fatalf("tampered value accepted at byte %d: %s", i, string(b))
		}
	}
}

func TestSignerRejectsWrongSecret(t *testing.T) {
	value := NewSigner("secret-a").Value("deadbeef")
	_, ok := NewSigner("secret-b").Verify(value)
	require.False(t, ok)
}

func TestSignerRejectsMalformedInput(t *testing.T) {
	s := NewSigner("secret")
	for _, v := range []string{
		"",
		".",
		"token-only",
		"token.",
		".signature",
		"token.not-hex!",
		strings.Repeat(".", 10),
	} {
		if _, ok := s.Verify(v); ok {
			t.Fatalf("malformed value accepted: %q", v)
		}
	}
}
