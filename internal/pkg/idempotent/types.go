package idempotent

import "context"

// IdempotencyService 幂等检查，Exists 在 key 不存在时会顺便占位，Del 释放占位
//
//go:generate mockgen -source=./types.go -package=idempotentmocks -destination=./mocks/idempotent.mock.go IdempotencyService
type IdempotencyService interface {
	Exists(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, key string) error
}
