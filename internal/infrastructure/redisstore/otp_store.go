package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pujakart/auth-service/internal/domain/entity"
	"github.com/pujakart/auth-service/internal/domain/repository"
	"github.com/pujakart/auth-service/pkg/helpers"
)

// OTPStore keeps pending OTP entries in Redis under login:otp:<phone>.
// The key TTL tracks the entry expiry, so stale codes age out on their own;
// the expiry instant is still stored and checked at verify time.
type OTPStore struct {
	rdb *redis.Client
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{rdb: rdb}
}

func (s *OTPStore) Get(ctx context.Context, phone string) (*entity.OTP, error) {
	var otp entity.OTP
	found, err := helpers.RedisGetJSON(ctx, s.rdb, helpers.KeyLoginOTP(phone), &otp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	return &otp, nil
}

func (s *OTPStore) Set(ctx context.Context, otp *entity.OTP) error {
	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return helpers.RedisSetJSON(ctx, s.rdb, helpers.KeyLoginOTP(otp.Phone), otp, ttl)
}

func (s *OTPStore) Delete(ctx context.Context, phone string) error {
	return helpers.RedisDel(ctx, s.rdb, helpers.KeyLoginOTP(phone))
}

var _ repository.OTPRepository = (*OTPStore)(nil)
