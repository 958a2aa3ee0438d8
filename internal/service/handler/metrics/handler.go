package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/service/handler"
)

const (
	median = 0.5
	p90    = 0.9
	p95    = 0.95
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p95Error    = 0.005
	p99Error    = 0.001

	maxAgeDuration = 5 * time.Minute

	resultSuccess = "success"
	resultFailure = "failure"
)

var _ handler.Handler = (*Handler)(nil)

// Handler 为渠道处理器添加指标收集的装饰器
type Handler struct {
	handler             handler.Handler
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendResultCounter   *prometheus.CounterVec
}

func (h *Handler) Channel() domain.Channel {
	return h.handler.Channel()
}

func (h *Handler) Handle(ctx context.Context, task domain.TaskInfo) bool {
	startTime := time.Now()
	channel := task.Channel.String()
	h.sendCounter.WithLabelValues(channel).Inc()

	ok := h.handler.Handle(ctx, task)

	result := resultSuccess
	if !ok {
		result = resultFailure
	}
	h.sendResultCounter.WithLabelValues(channel, result).Inc()
	h.sendDurationSummary.WithLabelValues(channel, result).Observe(time.Since(startTime).Seconds())
	return ok
}

// Collectors 同一组指标被多个处理器共享，只注册一次
type Collectors struct {
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendResultCounter   *prometheus.CounterVec
}

func NewCollectors(reg prometheus.Registerer) *Collectors {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "handler_send_duration_seconds",
			Help: "渠道处理器发送耗时统计（秒）",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p95:    p95Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
		},
		[]string{"channel", "result"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_send_total",
			Help: "渠道处理器发送总数",
		},
		[]string{"channel"},
	)

	sendResultCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_send_result_total",
			Help: "渠道处理器发送结果统计",
		},
		[]string{"channel", "result"},
	)

	reg.MustRegister(sendDurationSummary, sendCounter, sendResultCounter)
	return &Collectors{
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		sendResultCounter:   sendResultCounter,
	}
}

// Wrap 用这组指标装饰处理器
func (c *Collectors) Wrap(h handler.Handler) *Handler {
	return &Handler{
		handler:             h,
		sendDurationSummary: c.sendDurationSummary,
		sendCounter:         c.sendCounter,
		sendResultCounter:   c.sendResultCounter,
	}
}
