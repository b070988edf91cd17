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

// UserStore persists the whole user collection as a single JSON document.
// Every write serializes the full collection; a missing or malformed file
// reads as an empty collection rather than an error.
type UserStore struct {
	mu     sync.Mutex
	path   string
	logger *logrus.Logger
}

func NewUserStore(dataDir string, logger *logrus.Logger) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, "users.json"), logger: logger}
}

func (s *UserStore) read() []entity.User {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var users []entity.User
	if err := json.Unmarshal(raw, &users); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("path", s.path).Warn("malformed user store, treating as empty")
		}
		return nil
	}
	return users
}

func (s *UserStore) write(users []entity.User) error {
	if users == nil {
		users = []entity.User{}
	}
	b, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(s.path, b)
}

func (s *UserStore) List(ctx context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

func (s *UserStore) Append(ctx context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.read()
	users = append(users, *u)
	return s.write(users)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.read() {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) GetByIdentity(ctx context.Context, id entity.Identity) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.read() {
		if id.Matches(&u) {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.UserRepository = (*UserStore)(nil)
