package task

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/sender"
)

// ConsumerGroup 所有分发实例共用一个消费组
const ConsumerGroup = "notification-dispatch"

type Consumer struct {
	sender   sender.TaskSender
	registry *channel.Registry
	reader   MessageReader

	logger *elog.Component
}

// Consume 读取一条消息并发送其中的任务，消息格式错误时跳过
func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.reader.Consume(ctx)
	if err != nil {
		return err
	}
	if msg == nil {
		return nil
	}

	var evt Event
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.Warn("解析消息失败",
			elog.FieldErr(err),
			elog.String("msg", string(msg.Value)))
		return nil
	}

	tasks := make([]domain.TaskInfo, 0, len(evt.Tasks))
	for _, m := range evt.Tasks {
		content, err1 := c.registry.DecodeContent(m.Channel, m.ContentModel)
		if err1 != nil {
			c.logger.Warn("解析任务内容失败，跳过",
				elog.FieldErr(err1),
				elog.String("messageId", m.MessageID),
				elog.Any("channel", m.Channel))
			continue
		}
		tasks = append(tasks, domain.TaskInfo{
			MessageTemplateID: m.MessageTemplateID,
			BusinessID:        m.BusinessID,
			MessageID:         m.MessageID,
			Channel:           m.Channel,
			Receiver:          m.Receiver,
			SendAccount:       m.SendAccount,
			ContentModel:      content,
		})
	}
	if len(tasks) == 0 {
		return nil
	}

	results, err := c.sender.BatchSend(ctx, tasks)
	if err != nil {
		c.logger.Warn("批量发送任务失败", elog.FieldErr(err), elog.Any("count", len(tasks)))
		return err
	}
	for _, res := range results {
		switch {
		case res.Err != nil:
			c.logger.Warn("任务校验失败", elog.Any("result", res), elog.FieldErr(res.Err))
		case res.Status == domain.SendStatusFailed:
			c.logger.Warn("任务发送失败", elog.Any("result", res))
		}
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if er != nil && !errors.Is(er, context.DeadlineExceeded) {
				c.logger.Error("消费下发任务事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func NewConsumer(svc sender.TaskSender, registry *channel.Registry, q mq.MQ) (*Consumer, error) {
	return NewConsumerWithTopic(svc, registry, q, EventName)
}

func NewConsumerWithTopic(svc sender.TaskSender, registry *channel.Registry, q mq.MQ, topic string) (*Consumer, error) {
	consumer, err := q.Consumer(topic, ConsumerGroup)
	if err != nil {
		return nil, err
	}
	return NewConsumerWithReader(svc, registry, consumer), nil
}

func NewConsumerWithReader(svc sender.TaskSender, registry *channel.Registry, reader MessageReader) *Consumer {
	return &Consumer{
		sender:   svc,
		registry: registry,
		reader:   reader,
		logger:   elog.DefaultLogger,
	}
}
