package tracing

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/service/handler"
)

var _ handler.Handler = (*Handler)(nil)

// Handler 为渠道处理器添加链路追踪的装饰器
type Handler struct {
	handler handler.Handler
	tracer  trace.Tracer
}

func (h *Handler) Channel() domain.Channel {
	return h.handler.Channel()
}

func (h *Handler) Handle(ctx context.Context, task domain.TaskInfo) bool {
	ctx, span := h.tracer.Start(ctx, "Handler.Handle",
		trace.WithAttributes(
			attribute.String("task.channel", task.Channel.String()),
			attribute.String("task.messageId", task.MessageID),
			attribute.String("task.sendAccount", strconv.FormatInt(task.SendAccount, 10)),
			attribute.Int("task.receiverCount", len(task.Receiver)),
		))
	defer span.End()

	ok := h.handler.Handle(ctx, task)
	if !ok {
		span.SetStatus(codes.Error, "发送失败")
	}
	span.SetAttributes(attribute.Bool("task.success", ok))
	return ok
}

func NewHandler(h handler.Handler) *Handler {
	return NewHandlerWithTracer(h, otel.Tracer("notification-dispatch/handler"))
}

func NewHandlerWithTracer(h handler.Handler, tracer trace.Tracer) *Handler {
	return &Handler{
		handler: h,
		tracer:  tracer,
	}
}
