package idempotent

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dispatch_idempotency:"

var _ IdempotencyService = (*RedisService)(nil)

// RedisService 用 SETNX 占位，过期之后同一个 key 可以再次通过
type RedisService struct {
	cmd    redis.Cmdable
	expiry time.Duration
}

func (s *RedisService) Exists(ctx context.Context, key string) (bool, error) {
	// 值是第一次出现的时间，排查问题用
	fresh, err := s.cmd.SetNX(ctx, keyPrefix+key, time.Now().UnixMilli(), s.expiry).Result()
	if err != nil {
		return false, err
	}
	return !fresh, nil
}

func (s *RedisService) Del(ctx context.Context, key string) error {
	return s.cmd.Del(ctx, keyPrefix+key).Err()
}

func NewRedisService(cmd redis.Cmdable, expiry time.Duration) *RedisService {
	return &RedisService{
		cmd:    cmd,
		expiry: expiry,
	}
}
