package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSenhaRoundTrip(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	require.Len(t, salt, 16)

	hash := HashSenha("admin123", salt)
	assert.Len(t, hash, 32)

	assert.True(t, VerificarSenha("admin123", salt, hash))
	assert.False(t, VerificarSenha("admin124", salt, hash))
	assert.False(t, VerificarSenha("", salt, hash))
}

func TestHashSenhaDependeDoSalt(t *testing.T) {
	s1, err := NewSalt()
	require.NoError(t, err)
	s2, err := NewSalt()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)

	assert.NotEqual(t, HashSenha("admin123", s1), HashSenha("admin123", s2))
}

func TestNewTokenFormato(t *testing.T) {
	tok, err := NewToken()
	require.NoError(t, err)
	assert.Len(t, tok, 43) // 32 bytes base64url without padding
	assert.NotContains(t, tok, "=")
	assert.NotContains(t, tok, "+")
	assert.NotContains(t, tok, "/")

	other, err := NewToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
