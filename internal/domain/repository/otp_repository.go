package repository

import (
	"context"

	"github.com/pujakart/auth-service/internal/domain/entity"
)

// OTPRepository defines the interface for pending one-time passcodes,
// keyed by phone number. Get returns ErrNotFound when no entry exists.
type OTPRepository interface {
	Get(ctx context.Context, phone string) (*entity.OTP, error)
	Set(ctx context.Context, otp *entity.OTP) error
	Delete(ctx context.Context, phone string) error
}
