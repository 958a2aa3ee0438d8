package ioc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"notification-dispatch/internal/pkg/idempotent"
	"notification-dispatch/internal/pkg/ratelimit"
	"notification-dispatch/internal/service/account"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/handler"
	"notification-dispatch/internal/service/handler/dingding"
	"notification-dispatch/internal/service/handler/dingding/client"
	"notification-dispatch/internal/service/handler/flowcontrol"
	"notification-dispatch/internal/service/handler/metrics"
	"notification-dispatch/internal/service/handler/tracing"
)

type FlowControlConfig struct {
	// 钉钉机器人每分钟最多 20 条
	Interval         time.Duration `yaml:"interval"`
	Rate             int           `yaml:"rate"`
	Idempotent       bool          `yaml:"idempotent"`
	IdempotentExpiry time.Duration `yaml:"idempotentExpiry"`
}

func InitFlowControlConfig() FlowControlConfig {
	cfg := FlowControlConfig{
		Interval:         time.Minute,
		Rate:             20,
		IdempotentExpiry: 24 * time.Hour,
	}
	unmarshalOptional("flowcontrol", &cfg)
	return cfg
}

func InitLimiter(cmd redis.Cmdable, cfg FlowControlConfig) ratelimit.Limiter {
	return ratelimit.NewSlidingWindow(cmd, ratelimit.Rule{Interval: cfg.Interval, Rate: cfg.Rate})
}

// InitIdempotencyService 关闭去重时返回 nil
func InitIdempotencyService(cmd redis.Cmdable, cfg FlowControlConfig) idempotent.IdempotencyService {
	if !cfg.Idempotent {
		return nil
	}
	return idempotent.NewRedisService(cmd, cfg.IdempotentExpiry)
}

func InitDingDingHandler(svc account.Service) *dingding.Handler {
	var cfg dingding.Config
	unmarshalOptional("dingding", &cfg)
	return dingding.NewHandler(svc, client.NewHTTPClient(cfg.Timeout), cfg)
}

func InitHandlerCollectors() *metrics.Collectors {
	return metrics.NewCollectors(prometheus.DefaultRegisterer)
}

// InitDispatcher 每个处理器从外到内依次是 指标、链路、限流去重
func InitDispatcher(
	registry *channel.Registry,
	collectors *metrics.Collectors,
	limiter ratelimit.Limiter,
	idem idempotent.IdempotencyService,
	dingHandler *dingding.Handler,
) *handler.Dispatcher {
	decorate := func(h handler.Handler) handler.Handler {
		return collectors.Wrap(tracing.NewHandler(flowcontrol.NewHandler(h, limiter, idem)))
	}
	d, err := handler.NewDispatcher(registry, decorate(dingHandler))
	if err != nil {
		panic(err)
	}
	return d
}
