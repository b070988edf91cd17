package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pujakart/auth-service/internal/domain/entity"
	"github.com/pujakart/auth-service/internal/domain/repository"
)

// OTPStore persists pending OTP entries as a single JSON mapping from phone
// number to entry, with the same empty-on-absent/corrupt read policy as the
// user store.
type OTPStore struct {
	mu     sync.Mutex
	path   string
	logger *logrus.Logger
}

func NewOTPStore(dataDir string, logger *logrus.Logger) *OTPStore {
	return &OTPStore{path: filepath.Join(dataDir, "otps.json"), logger: logger}
}

func (s *OTPStore) read() map[string]entity.OTP {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]entity.OTP{}
	}
	var otps map[string]entity.OTP
	if err := json.Unmarshal(raw, &otps); err != nil || otps == nil {
		if err != nil && s.logger != nil {
			s.logger.WithError(err).WithField("path", s.path).Warn("malformed otp store, treating as empty")
		}
		return map[string]entity.OTP{}
	}
	return otps
}

func (s *OTPStore) write(otps map[string]entity.OTP) error {
	b, err := json.MarshalIndent(otps, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(s.path, b)
}

func (s *OTPStore) Get(ctx context.Context, phone string) (*entity.OTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.read()[phone]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s *OTPStore) Set(ctx context.Context, otp *entity.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	otps := s.read()
	otps[otp.Phone] = *otp
	return s.write(otps)
}

func (s *OTPStore) Delete(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	otps := s.read()
	delete(otps, phone)
	return s.write(otps)
}

var _ repository.OTPRepository = (*OTPStore)(nil)
