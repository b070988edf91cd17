package helpers

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. The stored credential is hex(salt) + hex(pbkdf2-sha512),
// compatible with records written by earlier versions of the backend.
const (
	saltBytes  = 16
	hashBytes  = 64
	iterations = 100_000
)

// Credential is a salted password hash pair, both hex encoded.
type Credential struct {
	Salt string
	Hash string
}

// HashPassword derives a credential from a plain password with a fresh
// random salt.
func HashPassword(plain string) (Credential, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return Credential{}, err
	}
	salt := hex.EncodeToString(b)
	return Credential{Salt: salt, Hash: HashPasswordWithSalt(plain, salt)}, nil
}

// HashPasswordWithSalt re-derives the hash for an existing salt.
func HashPasswordWithSalt(plain, salt string) string {
	key := pbkdf2.Key([]byte(plain), []byte(salt), iterations, hashBytes, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword re-derives the hash with the stored salt and compares it
// against the stored hash in constant time.
func VerifyPassword(plain, salt, hash string) bool {
	if salt == "" || hash == "" {
		return false
	}
	derived := HashPasswordWithSalt(plain, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}
