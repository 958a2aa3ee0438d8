package handler

import (
	"context"

	"notification-dispatch/internal/domain"
)

// Handler 渠道处理器，每个渠道一个实现
// Handle 必须吞掉内部所有错误，失败时返回 false 并记录日志，不能影响其它任务
//
//go:generate mockgen -source=./types.go -destination=./mocks/handler.mock.go -package=handlermocks Handler
type Handler interface {
	Channel() domain.Channel
	Handle(ctx context.Context, task domain.TaskInfo) bool
}
