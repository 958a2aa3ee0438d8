package handler

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/service/channel"
)

// Dispatcher 按任务的渠道编码选择处理器，分发前先用注册表校验任务
type Dispatcher struct {
	registry *channel.Registry
	handlers map[domain.Channel]Handler

	logger *elog.Component
}

// Dispatch 校验失败返回错误且不会调用处理器；否则返回处理器的结果，error 为 nil
func (d *Dispatcher) Dispatch(ctx context.Context, task domain.TaskInfo) (ok bool, err error) {
	if err = d.registry.Validate(task); err != nil {
		return false, err
	}
	h, found := d.handlers[task.Channel]
	if !found {
		return false, fmt.Errorf("%w: channel = %d", errs.ErrNoAvailableHandler, task.Channel)
	}

	// 装饰器链上任何一层 panic 都只影响当前任务
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("处理器执行 panic", elog.Any("panic", r), elog.String("task", task.String()))
			ok = false
		}
	}()
	return h.Handle(ctx, task), nil
}

// Channels 已挂载处理器的渠道
func (d *Dispatcher) Channels() []domain.Channel {
	res := make([]domain.Channel, 0, len(d.handlers))
	for _, desc := range d.registry.Descriptors() {
		if _, ok := d.handlers[desc.Code]; ok {
			res = append(res, desc.Code)
		}
	}
	return res
}

// NewDispatcher 创建分发器，处理器渠道重复或者未在注册表中声明都会失败
func NewDispatcher(registry *channel.Registry, handlers ...Handler) (*Dispatcher, error) {
	m := make(map[domain.Channel]Handler, len(handlers))
	for _, h := range handlers {
		code := h.Channel()
		if _, err := registry.Descriptor(code); err != nil {
			return nil, err
		}
		if _, ok := m[code]; ok {
			return nil, fmt.Errorf("%w: 处理器重复 code = %d", errs.ErrDuplicateChannel, code)
		}
		m[code] = h
	}
	return &Dispatcher{
		registry: registry,
		handlers: m,
		logger:   elog.DefaultLogger,
	}, nil
}
