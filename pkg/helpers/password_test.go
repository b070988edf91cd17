package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	cred, err := HashPassword("password123")

	require.NoError(t, err)
	assert.Len(t, cred.Salt, saltBytes*2)
	assert.Len(t, cred.Hash, hashBytes*2)
	assert.NotEqual(t, "password123", cred.Hash)
}

func TestHashPasswordFreshSalt(t *testing.T) {
	a, err := HashPassword("password123")
	require.NoError(t, err)
	b, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestHashPasswordWithSaltDeterministic(t *testing.T) {
	cred, err := HashPassword("password123")
	require.NoError(t, err)

	assert.Equal(t, cred.Hash, HashPasswordWithSalt("password123", cred.Salt))
	assert.NotEqual(t, cred.Hash, HashPasswordWithSalt("password124", cred.Salt))
}

func TestVerifyPassword(t *testing.T) {
	cred, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("password123", cred.Salt, cred.Hash))
	assert.False(t, VerifyPassword("wrongpassword", cred.Salt, cred.Hash))
}

func TestVerifyPasswordEmptyCredential(t *testing.T) {
	// OTP-created accounts have no password set; nothing must verify
	assert.False(t, VerifyPassword("", "", ""))
	assert.False(t, VerifyPassword("password123", "", ""))
}
