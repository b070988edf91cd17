package entity

import "time"

// OTP is a pending one-time passcode for a phone number. At most one entry
// exists per phone; a new request overwrites any prior code.
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
