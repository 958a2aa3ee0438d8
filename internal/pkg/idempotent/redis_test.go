package idempotent

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisServiceTestSuite struct {
	suite.Suite
	client *redis.Client
	prefix string
}

func TestRedisService(t *testing.T) {
	t.Parallel()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skip("Redis 不可用，跳过测试")
	}
	suite.Run(t, &RedisServiceTestSuite{
		client: client,
		prefix: strconv.FormatInt(time.Now().UnixNano(), 10) + "-",
	})
}

func (s *RedisServiceTestSuite) TearDownSuite() {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, keyPrefix+s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		s.client.Del(ctx, iter.Val())
	}
	_ = s.client.Close()
}

func (s *RedisServiceTestSuite) TestExists() {
	svc := NewRedisService(s.client, time.Minute)
	ctx := s.T().Context()

	exists, err := svc.Exists(ctx, s.prefix+"msg-1")
	s.Require().NoError(err)
	s.False(exists)

	// 同一条消息第二次检查就是重复
	exists, err = svc.Exists(ctx, s.prefix+"msg-1")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = svc.Exists(ctx, s.prefix+"msg-2")
	s.Require().NoError(err)
	s.False(exists)

	ttl, err := s.client.TTL(ctx, keyPrefix+s.prefix+"msg-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

// 释放占位之后同一个 key 可以再次通过
func (s *RedisServiceTestSuite) TestDel() {
	svc := NewRedisService(s.client, time.Minute)
	ctx := s.T().Context()
	key := s.prefix + "msg-released"

	exists, err := svc.Exists(ctx, key)
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(svc.Del(ctx, key))
	exists, err = svc.Exists(ctx, key)
	s.Require().NoError(err)
	s.False(exists)

	// 不存在的 key 也可以释放
	s.NoError(svc.Del(ctx, s.prefix+"msg-missing"))
}

func (s *RedisServiceTestSuite) TestExpired() {
	svc := NewRedisService(s.client, 100*time.Millisecond)
	ctx := s.T().Context()
	key := s.prefix + "msg-expired"

	exists, err := svc.Exists(ctx, key)
	s.Require().NoError(err)
	s.False(exists)

	time.Sleep(300 * time.Millisecond)
	exists, err = svc.Exists(ctx, key)
	s.Require().NoError(err)
	s.False(exists)
}
