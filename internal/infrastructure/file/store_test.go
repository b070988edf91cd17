package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pujakart/auth-service/internal/domain/entity"
	"github.com/pujakart/auth-service/internal/domain/repository"
)

func TestUserStoreEmptyWhenAbsent(t *testing.T) {
	s := NewUserStore(t.TempDir(), nil)

	users, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = s.GetByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserStoreEmptyWhenCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))

	s := NewUserStore(dir, nil)
	users, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserStoreAppendAndLookup(t *testing.T) {
	dir := t.TempDir()
	s := NewUserStore(dir, nil)
	ctx := context.Background()

	u := &entity.User{ID: "abc123", Name: "A", Email: "a@x.com", Salt: "s", Hash: "h", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Append(ctx, u))

	got, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.ID)

	// a fresh store over the same file sees the persisted record
	s2 := NewUserStore(dir, nil)
	got, err = s2.GetByIdentity(ctx, entity.NewEmailIdentity("a@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.ID)

	users, err := s2.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserStoreGetByIdentityPhone(t *testing.T) {
	s := NewUserStore(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, &entity.User{ID: "u1", Email: "+15550001", Phone: "+15550001"}))

	got, err := s.GetByIdentity(ctx, entity.NewPhoneIdentity("+15550001"))
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestOTPStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewOTPStore(dir, nil)
	ctx := context.Background()

	_, err := s.Get(ctx, "+15550001")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	otp := &entity.OTP{Phone: "+15550001", Code: "123456", ExpiresAt: time.Now().Add(5 * time.Minute)}
	require.NoError(t, s.Set(ctx, otp))

	got, err := s.Get(ctx, "+15550001")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)

	// the newest request overwrites the pending entry
	require.NoError(t, s.Set(ctx, &entity.OTP{Phone: "+15550001", Code: "654321", ExpiresAt: otp.ExpiresAt}))
	got, err = s.Get(ctx, "+15550001")
	require.NoError(t, err)
	assert.Equal(t, "654321", got.Code)

	require.NoError(t, s.Delete(ctx, "+15550001"))
	_, err = s.Get(ctx, "+15550001")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOTPStoreEmptyWhenCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "otps.json"), []byte("]["), 0o644))

	s := NewOTPStore(dir, nil)
	_, err := s.Get(context.Background(), "+15550001")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// writes recover the document
	require.NoError(t, s.Set(context.Background(), &entity.OTP{Phone: "+15550001", Code: "123456"}))
	got, err := s.Get(context.Background(), "+15550001")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewUserStore(dir, nil)
	require.NoError(t, s.Append(context.Background(), &entity.User{ID: "u1", Email: "a@x.com"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}
