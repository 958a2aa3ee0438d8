package ratelimit

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type SlidingWindowTestSuite struct {
	suite.Suite
	client *redis.Client
}

func TestSlidingWindow(t *testing.T) {
	t.Parallel()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skip("Redis 不可用，跳过测试")
	}
	suite.Run(t, &SlidingWindowTestSuite{client: client})
}

func (s *SlidingWindowTestSuite) TearDownSuite() {
	_ = s.client.Close()
}

func (s *SlidingWindowTestSuite) newKey() string {
	key := "ding_ding_robot:" + strconv.FormatInt(time.Now().UnixNano(), 10)
	s.T().Cleanup(func() {
		s.client.Del(context.Background(), windowKey(key), limitedKey(key))
	})
	return key
}

func (s *SlidingWindowTestSuite) TestLimit() {
	ctx := s.T().Context()
	w := NewSlidingWindow(s.client, Rule{Interval: time.Minute, Rate: 3})
	key := s.newKey()

	last, err := w.LastLimited(ctx, key)
	s.Require().NoError(err)
	s.True(last.IsZero())

	for i := 0; i < 3; i++ {
		limited, err := w.Limit(ctx, key)
		s.Require().NoError(err)
		s.False(limited, "第 %d 次请求不应该被限流", i+1)
	}

	limited, err := w.Limit(ctx, key)
	s.Require().NoError(err)
	s.True(limited)

	last, err = w.LastLimited(ctx, key)
	s.Require().NoError(err)
	s.False(last.IsZero())
}

// 请求滑出窗口后重新放行
func (s *SlidingWindowTestSuite) TestWindowSlides() {
	ctx := s.T().Context()
	w := NewSlidingWindow(s.client, Rule{Interval: time.Minute, Rate: 1})
	now := time.Now()
	w.now = func() time.Time { return now }
	key := s.newKey()

	limited, err := w.Limit(ctx, key)
	s.Require().NoError(err)
	s.False(limited)

	limited, err = w.Limit(ctx, key)
	s.Require().NoError(err)
	s.True(limited)

	now = now.Add(time.Minute + time.Millisecond)
	limited, err = w.Limit(ctx, key)
	s.Require().NoError(err)
	s.False(limited)
}

// 不同的 key 互不影响
func (s *SlidingWindowTestSuite) TestKeysAreIsolated() {
	ctx := s.T().Context()
	w := NewSlidingWindow(s.client, Rule{Interval: time.Minute, Rate: 1})
	k1, k2 := s.newKey()+"-1", s.newKey()+"-2"
	s.T().Cleanup(func() {
		s.client.Del(context.Background(), windowKey(k1), limitedKey(k1), windowKey(k2), limitedKey(k2))
	})

	limited, err := w.Limit(ctx, k1)
	s.Require().NoError(err)
	s.False(limited)

	limited, err = w.Limit(ctx, k2)
	s.Require().NoError(err)
	s.False(limited)
}
