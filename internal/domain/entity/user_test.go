package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		raw  string
		kind IdentityKind
	}{
		{"a@x.com", EmailIdentity},
		{"+15550001", PhoneIdentity},
		{"15550001", PhoneIdentity},
	}
	for _, tt := range tests {
		id := ParseIdentity(tt.raw)
		assert.Equal(t, tt.kind, id.Kind, tt.raw)
		assert.Equal(t, tt.raw, id.Value)
	}
}

func TestIdentityMatches(t *testing.T) {
	passwordUser := &User{ID: "u1", Email: "a@x.com"}
	otpUser := &User{ID: "u2", Email: "+15550001", Phone: "+15550001"}

	assert.True(t, NewEmailIdentity("a@x.com").Matches(passwordUser))
	assert.False(t, NewEmailIdentity("b@x.com").Matches(passwordUser))

	// phone identity matches both fields; OTP accounts carry the phone in
	// the email field as a fallback
	assert.True(t, NewPhoneIdentity("+15550001").Matches(otpUser))
	assert.False(t, NewPhoneIdentity("+15550002").Matches(otpUser))
	assert.False(t, NewPhoneIdentity("+15550001").Matches(passwordUser))

	// a phone-shaped email lookup must not match a phone field
	assert.False(t, NewEmailIdentity("+15550001").Matches(&User{Phone: "+15550001"}))

	assert.False(t, NewPhoneIdentity("").Matches(otpUser))
}

func TestUserHasPassword(t *testing.T) {
	assert.True(t, (&User{Salt: "s", Hash: "h"}).HasPassword())
	assert.False(t, (&User{}).HasPassword())
	assert.False(t, (&User{Salt: "s"}).HasPassword())
}
