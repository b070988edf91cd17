package helpers

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// OTP helpers

// KeyLoginOTP is the Redis key for the pending login OTP of a phone number
func KeyLoginOTP(phone string) string {
	return "login:otp:" + phone
}

// GenOTPCode generates a secure random 6-digit OTP code in 100000-999999
func GenOTPCode() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint64(b) % 900000
	return fmt.Sprintf("%06d", 100000+n), nil
}
