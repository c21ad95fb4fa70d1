package model

import "time"

// Usuario is a system operator. Papel: "ADMIN" for now — authorization
// beyond "authenticated" is out of scope, the label is informational.
type Usuario struct {
	ID        string
	Nome      string
	Email     string // normalized lowercase, unique
	Papel     string
	Ativo     bool
	Salt      []byte // 16 random bytes
	SenhaHash []byte // PBKDF2-HMAC-SHA256, 120k iterations, 32 bytes
	CriadoEm  time.Time
}
