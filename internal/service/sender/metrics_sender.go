package sender

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"notification-dispatch/internal/domain"
)

const (
	metricsMaxAge        = 5 * time.Minute
	metricsP50Percentile = 0.5
	metricsP50Error      = 0.05
	metricsP90Percentile = 0.9
	metricsP90Error      = 0.01
	metricsP95Percentile = 0.95
	metricsP95Error      = 0.005
	metricsP99Percentile = 0.99
	metricsP99Error      = 0.001

	metricsBatchTag = "batch"
)

var _ TaskSender = (*MetricsSender)(nil)

// MetricsSender 为任务发送添加指标收集的装饰器
type MetricsSender struct {
	sender              TaskSender
	sendDurationSummary *prometheus.SummaryVec
	batchSendCounter    *prometheus.CounterVec
	taskSentStatus      *prometheus.CounterVec
}

func (m *MetricsSender) Send(ctx context.Context, task domain.TaskInfo) domain.SendResult {
	startTime := time.Now()

	res := m.sender.Send(ctx, task)

	m.taskSentStatus.WithLabelValues(task.Channel.String(), res.Status.String()).Inc()
	m.sendDurationSummary.WithLabelValues(task.Channel.String(), res.Status.String()).
		Observe(time.Since(startTime).Seconds())
	return res
}

func (m *MetricsSender) BatchSend(ctx context.Context, tasks []domain.TaskInfo) ([]domain.SendResult, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	startTime := time.Now()
	m.batchSendCounter.WithLabelValues(metricsBatchTag).Inc()

	results, err := m.sender.BatchSend(ctx, tasks)
	for _, res := range results {
		m.taskSentStatus.WithLabelValues(res.Channel.String(), res.Status.String()).Inc()
	}

	// 记录平均每个任务的耗时
	m.sendDurationSummary.WithLabelValues(metricsBatchTag, metricsBatchTag).
		Observe(time.Since(startTime).Seconds() / float64(len(tasks)))
	return results, err
}

// NewMetricsSender 创建一个新的带有指标收集的发送器
func NewMetricsSender(sender TaskSender, reg prometheus.Registerer) *MetricsSender {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "task_send_duration_seconds",
			Help:       "任务发送耗时统计（秒）",
			Objectives: map[float64]float64{metricsP50Percentile: metricsP50Error, metricsP90Percentile: metricsP90Error, metricsP95Percentile: metricsP95Error, metricsP99Percentile: metricsP99Error},
			MaxAge:     metricsMaxAge,
		},
		[]string{"channel", "status"},
	)

	batchSendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_batch_send_total",
			Help: "批量发送次数",
		},
		[]string{"type"},
	)

	taskSentStatus := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_sent_status_total",
			Help: "任务发送状态统计",
		},
		[]string{"channel", "status"},
	)

	reg.MustRegister(sendDurationSummary, batchSendCounter, taskSentStatus)

	return &MetricsSender{
		sender:              sender,
		sendDurationSummary: sendDurationSummary,
		batchSendCounter:    batchSendCounter,
		taskSentStatus:      taskSentStatus,
	}
}
