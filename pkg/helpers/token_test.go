package helpers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]+$`)

func TestGenUserID(t *testing.T) {
	id, err := GenUserID()
	require.NoError(t, err)
	assert.Len(t, id, UserIDBytes*2)
	assert.Regexp(t, hexRe, id)
}

func TestGenBearerToken(t *testing.T) {
	tok, err := GenBearerToken()
	require.NoError(t, err)
	assert.Len(t, tok, BearerTokenBytes*2)
	assert.Regexp(t, hexRe, tok)

	other, err := GenBearerToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
