package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// Opaque identifier sizes in bytes, doubled when hex encoded.
const (
	UserIDBytes      = 8
	BearerTokenBytes = 24
)

// GenHex returns n random bytes hex encoded.
func GenHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenUserID generates an opaque account id.
func GenUserID() (string, error) {
	return GenHex(UserIDBytes)
}

// GenBearerToken generates an opaque bearer token. Tokens are terminal
// artifacts: they are returned to the caller and never stored or validated
// by this service.
func GenBearerToken() (string, error) {
	return GenHex(BearerTokenBytes)
}
