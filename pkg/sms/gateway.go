package sms

import "context"

// Result reports the outcome of a message-send attempt. DevMode is true when
// no provider is configured and the message was only logged; callers use it
// to echo OTP codes back to the requester during development.
type Result struct {
	DevMode    bool
	StatusCode int
	Body       string
}

// Gateway delivers a text message to a phone number. Errors are surfaced to
// the caller and never retried.
type Gateway interface {
	Send(ctx context.Context, to, body string) (Result, error)
}
