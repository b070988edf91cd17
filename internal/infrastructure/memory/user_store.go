package memory

import (
	"context"
	"sync"

	"github.com/pujakart/auth-service/internal/domain/entity"
	"github.com/pujakart/auth-service/internal/domain/repository"
)

// UserStore is an in-memory UserRepository used by tests and as a fallback
// when no persistent backend is configured.
type UserStore struct {
	mu    sync.RWMutex
	users []entity.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) List(ctx context.Context) ([]entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) Append(ctx context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *u)
	return nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) GetByIdentity(ctx context.Context, id entity.Identity) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if id.Matches(&s.users[i]) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.UserRepository = (*UserStore)(nil)
