// cmd/genhash — prints a fresh salt and PBKDF2 hash for a password, using
// the same parameters as the server. Handy when crafting seed users.
// Usage: go run ./cmd/genhash <senha>
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"barclube/internal/auth"
)

func main() {
	senha := "admin123"
	if len(os.Args) > 1 {
		senha = os.Args[1]
	}

	salt, err := auth.NewSalt()
	if err != nil {
		fmt.Fprintln(os.Stderr, "salt error:", err)
		os.Exit(1)
	}
	hash := auth.HashSenha(senha, salt)

	fmt.Printf("salt: %s\n", hex.EncodeToString(salt))
	fmt.Printf("hash: %s\n", hex.EncodeToString(hash))
}
