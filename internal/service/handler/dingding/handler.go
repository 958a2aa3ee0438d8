package dingding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/service/account"
	"notification-dispatch/internal/service/handler"
	"notification-dispatch/internal/service/handler/dingding/client"
)

const (
	AccountKey    = "dingDingRobotAccount"
	AccountPrefix = "ding_ding_robot_"

	failedMsg = "DingDingRobotHandler#Handle 发送失败"
)

var _ handler.Handler = (*Handler)(nil)

type Config struct {
	// Timeout 单次发送的超时时间，默认 5 秒
	Timeout time.Duration `yaml:"timeout"`
	// FailOpen 签名失败时仍然用空签名发送，默认不发送
	FailOpen bool `yaml:"failOpen"`
}

// Handler 钉钉自定义机器人
type Handler struct {
	accountSvc account.Service
	client     client.Client
	timeout    time.Duration
	failOpen   bool
	now        func() time.Time

	logger *elog.Component
}

func (h *Handler) Channel() domain.Channel {
	return domain.ChannelDingDingRobot
}

func (h *Handler) Handle(ctx context.Context, task domain.TaskInfo) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error(failedMsg, elog.Any("panic", r), elog.String("task", task.String()))
			ok = false
		}
	}()

	resp, err := h.send(ctx, task)
	if err != nil {
		h.logger.Error(failedMsg, elog.FieldErr(err), elog.String("task", task.String()))
		return false
	}
	if !resp.Success() {
		h.logger.Error(failedMsg, elog.Any("result", resp), elog.String("task", task.String()))
		return false
	}
	return true
}

func (h *Handler) send(ctx context.Context, task domain.TaskInfo) (client.SendResp, error) {
	acc, err := account.GetAccount[domain.DingDingRobotAccount](ctx, h.accountSvc, task.SendAccount, AccountKey, AccountPrefix)
	if err != nil {
		return client.SendResp{}, err
	}

	content, err := h.content(task)
	if err != nil {
		return client.SendResp{}, err
	}
	body, err := json.Marshal(AssembleParam(ResolveTarget(task.Receiver), content))
	if err != nil {
		return client.SendResp{}, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}

	// 时间戳每次发送都重新生成，钉钉只接受一小时内的签名
	ts := h.now().UnixMilli()
	sign, err := Sign(ts, acc.Secret)
	if err != nil {
		if !h.failOpen {
			return client.SendResp{}, err
		}
		h.logger.Warn("DingDingRobotHandler#Handle 计算签名失败，使用空签名发送",
			elog.FieldErr(err), elog.String("messageId", task.MessageID))
		sign = ""
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.client.Send(ctx, client.SendReq{
		URL:  client.BuildURL(acc.Webhook, ts, sign),
		Body: body,
	})
}

func (h *Handler) content(task domain.TaskInfo) (domain.DingDingContentModel, error) {
	switch c := task.ContentModel.(type) {
	case domain.DingDingContentModel:
		return c, nil
	case *domain.DingDingContentModel:
		if c != nil {
			return *c, nil
		}
	}
	return domain.DingDingContentModel{}, fmt.Errorf("%w: want = %s, got = %T",
		errs.ErrContentModelMismatch, domain.ContentKindDingDingRobot, task.ContentModel)
}

func NewHandler(accountSvc account.Service, c client.Client, cfg Config) *Handler {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = client.DefaultTimeout
	}
	return &Handler{
		accountSvc: accountSvc,
		client:     c,
		timeout:    timeout,
		failOpen:   cfg.FailOpen,
		now:        time.Now,
		logger:     elog.DefaultLogger,
	}
}
