package sender

import (
	"context"

	"notification-dispatch/internal/domain"
)

// TaskSender 任务发送接口
//
//go:generate mockgen -source=./types.go -destination=./mocks/sender.mock.go -package=sendermocks TaskSender
type TaskSender interface {
	// Send 发送单个任务，校验失败也以失败结果返回
	Send(ctx context.Context, task domain.TaskInfo) domain.SendResult
	// BatchSend 并发发送，结果顺序与入参一致
	BatchSend(ctx context.Context, tasks []domain.TaskInfo) ([]domain.SendResult, error)
}
