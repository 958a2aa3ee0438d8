package ioc

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

const partitions = 1

// InitMQ 内存实现，每次调用都是一个新的队列，topics 预先创建
func InitMQ(topics ...string) (mq.MQ, error) {
	q := memory.NewMQ()
	for _, t := range topics {
		if err := q.CreateTopic(context.Background(), t, partitions); err != nil {
			return nil, err
		}
	}
	return q, nil
}
