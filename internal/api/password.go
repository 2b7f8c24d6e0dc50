package api

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// deriveKey stretches a password with argon2id. The directory stores only
// the salt and the derived key; the clear password is never retained.
func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

func newSalt() []byte {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		panic(err)
	}
	return salt
}

func verifyPassword(password, salt, verifier []byte) bool {
	derived := deriveKey(password, salt)
	return subtle.ConstantTimeCompare(derived, verifier) == 1
}
