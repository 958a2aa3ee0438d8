package ratelimit

import (
	"context"
	"time"
)

// Rule Interval 内最多放行 Rate 次
type Rule struct {
	Interval time.Duration
	Rate     int
}

//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go Limiter
type Limiter interface {
	// Limit 返回 true 表示这次请求被限流
	Limit(ctx context.Context, key string) (bool, error)
}
