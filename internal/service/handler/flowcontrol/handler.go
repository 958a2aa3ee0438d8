package flowcontrol

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/pkg/idempotent"
	"notification-dispatch/internal/pkg/ratelimit"
	"notification-dispatch/internal/service/handler"
)

var _ handler.Handler = (*Handler)(nil)

// Handler 可选按 MessageID 去重，再按渠道+发送账号限流。
// 只有发送成功的任务会保留去重占位，限流器和幂等服务出错时放行。
type Handler struct {
	handler    handler.Handler
	limiter    ratelimit.Limiter
	idempotent idempotent.IdempotencyService

	logger *elog.Component
}

func (h *Handler) Channel() domain.Channel {
	return h.handler.Channel()
}

func (h *Handler) Handle(ctx context.Context, task domain.TaskInfo) bool {
	// 重复任务直接返回，不占用限流额度
	claimed, duplicated := h.claim(ctx, task)
	if duplicated {
		return true
	}

	key := limitKey(task)
	limited, err := h.limiter.Limit(ctx, key)
	if err != nil {
		h.logger.Warn("限流器异常，放行", elog.FieldErr(err), elog.String("key", key))
	} else if limited {
		h.logger.Warn("触发限流",
			elog.FieldErr(fmt.Errorf("%w: key = %s", errs.ErrRateLimited, key)),
			elog.String("task", task.String()))
		h.release(ctx, task, claimed)
		return false
	}

	ok := h.handler.Handle(ctx, task)
	if !ok {
		h.release(ctx, task, claimed)
	}
	return ok
}

// claim 占位成功返回 claimed，已经发送过返回 duplicated
func (h *Handler) claim(ctx context.Context, task domain.TaskInfo) (claimed, duplicated bool) {
	if h.idempotent == nil || task.MessageID == "" {
		return false, false
	}
	exists, err := h.idempotent.Exists(ctx, task.MessageID)
	switch {
	case err != nil:
		h.logger.Warn("幂等检查失败，继续发送", elog.FieldErr(err), elog.String("messageId", task.MessageID))
		return false, false
	case exists:
		h.logger.Info("重复的任务，跳过发送", elog.String("messageId", task.MessageID))
		return false, true
	default:
		return true, false
	}
}

// release 没有发出去的任务释放占位，调用方重试时才能再次发送
func (h *Handler) release(ctx context.Context, task domain.TaskInfo, claimed bool) {
	if !claimed {
		return
	}
	// 发送超时之后 ctx 可能已经结束
	if err := h.idempotent.Del(context.WithoutCancel(ctx), task.MessageID); err != nil {
		h.logger.Warn("释放幂等占位失败", elog.FieldErr(err), elog.String("messageId", task.MessageID))
	}
}

func limitKey(task domain.TaskInfo) string {
	return fmt.Sprintf("dispatch:%d:%d", task.Channel, task.SendAccount)
}

// NewHandler idem 为 nil 时不做去重
func NewHandler(h handler.Handler, limiter ratelimit.Limiter, idem idempotent.IdempotencyService) *Handler {
	return &Handler{
		handler:    h,
		limiter:    limiter,
		idempotent: idem,
		logger:     elog.DefaultLogger,
	}
}
