package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// NewToken mints an opaque bearer token: 32 random bytes, URL-safe base64
// without padding. Tokens never expire in-core; revocation is out of scope.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
