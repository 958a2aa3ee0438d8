package task

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
	"notification-dispatch/internal/domain"
)

const EventName = "dispatch_task_events"

// Event 一批待下发的任务
type Event struct {
	Tasks []TaskMessage `json:"tasks"`
}

// TaskMessage 任务的消息格式，contentModel 按渠道声明的类型解码
type TaskMessage struct {
	MessageTemplateID int64           `json:"messageTemplateId"`
	BusinessID        int64           `json:"businessId"`
	MessageID         string          `json:"messageId"`
	Channel           domain.Channel  `json:"sendChannel"`
	Receiver          []string        `json:"receiver"`
	SendAccount       int64           `json:"sendAccount"`
	ContentModel      json.RawMessage `json:"contentModel"`
}

func NewTaskMessage(task domain.TaskInfo) (TaskMessage, error) {
	content, err := json.Marshal(task.ContentModel)
	if err != nil {
		return TaskMessage{}, err
	}
	return TaskMessage{
		MessageTemplateID: task.MessageTemplateID,
		BusinessID:        task.BusinessID,
		MessageID:         task.MessageID,
		Channel:           task.Channel,
		Receiver:          task.Receiver,
		SendAccount:       task.SendAccount,
		ContentModel:      content,
	}, nil
}

// MessageReader 读取一条任务消息，没有消息时可以返回 nil
type MessageReader interface {
	Consume(ctx context.Context) (*mq.Message, error)
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=./mocks/task_event_producer.mock.go Producer
type Producer interface {
	Produce(ctx context.Context, evt Event) error
}
