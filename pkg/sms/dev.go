package sms

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Dev is the gateway used when no provider credentials are configured. It
// logs the intended message and reports success in development mode, which
// lets the OTP flow echo the code back to the requester.
type Dev struct {
	Logger *logrus.Logger
}

func NewDev(logger *logrus.Logger) *Dev {
	return &Dev{Logger: logger}
}

func (d *Dev) Send(ctx context.Context, to, body string) (Result, error) {
	if d.Logger != nil {
		d.Logger.WithFields(logrus.Fields{"to": to, "body": body}).Info("sms gateway in dev mode, message not sent")
	}
	return Result{DevMode: true}, nil
}

var _ Gateway = (*Dev)(nil)
