package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the account domain.
// Salt and Hash hold the PBKDF2 credential; both are empty for accounts
// created through the OTP flow (no password set).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Salt      string    `json:"salt"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasPassword reports whether a password credential is set.
func (u *User) HasPassword() bool {
	return u.Salt != "" && u.Hash != ""
}

// IdentityKind discriminates the two ways an account can be addressed.
type IdentityKind int

const (
	EmailIdentity IdentityKind = iota
	PhoneIdentity
)

// Identity is a tagged email-or-phone identifier. Both values live in
// textual fields on the user record, so lookups carry the tag to avoid
// ambiguity between the two namespaces.
type Identity struct {
	Kind  IdentityKind
	Value string
}

func NewEmailIdentity(email string) Identity {
	return Identity{Kind: EmailIdentity, Value: email}
}

func NewPhoneIdentity(phone string) Identity {
	return Identity{Kind: PhoneIdentity, Value: phone}
}

// ParseIdentity classifies a raw identifier: anything containing "@" is
// treated as an email address, everything else as a phone number.
func ParseIdentity(raw string) Identity {
	if strings.Contains(raw, "@") {
		return NewEmailIdentity(raw)
	}
	return NewPhoneIdentity(raw)
}

// Matches reports whether the identity refers to the given user. OTP-created
// accounts store the phone number in the email field as a fallback identity,
// so a phone identity is checked against both fields.
func (i Identity) Matches(u *User) bool {
	if i.Value == "" {
		return false
	}
	switch i.Kind {
	case EmailIdentity:
		return u.Email == i.Value
	case PhoneIdentity:
		return u.Phone == i.Value || u.Email == i.Value
	}
	return false
}
