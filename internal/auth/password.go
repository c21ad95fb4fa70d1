// Package auth holds the credential primitives: PBKDF2 password hashing
// and opaque bearer token minting. Both binaries (server, genhash) share it.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	keyLen     = 32
	iterations = 120_000
)

// NewSalt returns 16 bytes from the system CSPRNG.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashSenha derives a 256-bit PBKDF2-HMAC-SHA256 key with 120 000 iterations.
func HashSenha(senha string, salt []byte) []byte {
	return pbkdf2.Key([]byte(senha), salt, iterations, keyLen, sha256.New)
}

// VerificarSenha recomputes the hash and compares over the full length in
// constant time.
func VerificarSenha(senha string, salt, esperado []byte) bool {
	got := HashSenha(senha, salt)
	return subtle.ConstantTimeCompare(got, esperado) == 1
}
