package repository

import (
	"context"
	"errors"

	"github.com/pujakart/auth-service/internal/domain/entity"
)

var (
	// ErrNotFound is returned by lookups when no record matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by Append when a backend-level unique
	// constraint rejects the record.
	ErrDuplicate = errors.New("duplicate identity")
)

// UserRepository defines the interface for user persistence. Records are
// append-only: this service never updates or deletes accounts.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	Append(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIdentity(ctx context.Context, id entity.Identity) (*entity.User, error)
}
