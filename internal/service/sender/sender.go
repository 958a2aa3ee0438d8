package sender

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecodeclub/ekit/pool"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
)

var _ TaskSender = (*sender)(nil)

// Dispatcher 任务分发，校验失败返回 error
type Dispatcher interface {
	Dispatch(ctx context.Context, task domain.TaskInfo) (bool, error)
}

// sender 任务发送器实现
type sender struct {
	dispatcher Dispatcher
	taskPool   pool.TaskPool

	logger *elog.Component
}

func (s *sender) Send(ctx context.Context, task domain.TaskInfo) domain.SendResult {
	res := domain.SendResult{
		MessageID: task.MessageID,
		Channel:   task.Channel,
		Status:    domain.SendStatusFailed,
	}
	ok, err := s.dispatcher.Dispatch(ctx, task)
	if err != nil {
		s.logger.Warn("任务校验失败", elog.FieldErr(err), elog.String("task", task.String()))
		res.Err = err
		return res
	}
	if ok {
		res.Status = domain.SendStatusSucceeded
	}
	return res
}

func (s *sender) BatchSend(ctx context.Context, tasks []domain.TaskInfo) ([]domain.SendResult, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	// 每个任务只写自己的下标，不需要加锁
	results := make([]domain.SendResult, len(tasks))
	var wg sync.WaitGroup
	for i := range tasks {
		task := tasks[i]
		wg.Add(1)
		err := s.taskPool.Submit(ctx, pool.TaskFunc(func(context.Context) error {
			defer wg.Done()
			results[i] = s.Send(ctx, task)
			return nil
		}))
		if err != nil {
			wg.Done()
			wg.Wait()
			s.logger.Warn("提交任务到任务池失败",
				elog.FieldErr(err),
				elog.String("task", task.String()),
			)
			return nil, fmt.Errorf("提交任务到任务池失败: %w", err)
		}
	}
	wg.Wait()
	return results, nil
}

// NewSender 创建任务发送器，taskPool 需要已经 Start
func NewSender(d Dispatcher, taskPool pool.TaskPool) TaskSender {
	return &sender{
		dispatcher: d,
		taskPool:   taskPool,
		logger:     elog.DefaultLogger,
	}
}
