package memory

import (
	"context"
	"sync"

	"github.com/pujakart/auth-service/internal/domain/entity"
	"github.com/pujakart/auth-service/internal/domain/repository"
)

// OTPStore is an in-memory OTPRepository keyed by phone number.
type OTPStore struct {
	mu   sync.RWMutex
	otps map[string]entity.OTP
}

func NewOTPStore() *OTPStore {
	return &OTPStore{otps: make(map[string]entity.OTP)}
}

func (s *OTPStore) Get(ctx context.Context, phone string) (*entity.OTP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.otps[phone]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s *OTPStore) Set(ctx context.Context, otp *entity.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[otp.Phone] = *otp
	return nil
}

func (s *OTPStore) Delete(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otps, phone)
	return nil
}

var _ repository.OTPRepository = (*OTPStore)(nil)
