package task

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
)

var _ Producer = (*MQProducer)(nil)

type MQProducer struct {
	producer mq.Producer
}

func (p *MQProducer) Produce(ctx context.Context, evt Event) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: val})
	return err
}

func NewProducer(q mq.MQ) (*MQProducer, error) {
	return NewProducerWithTopic(q, EventName)
}

func NewProducerWithTopic(q mq.MQ, topic string) (*MQProducer, error) {
	producer, err := q.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &MQProducer{producer: producer}, nil
}
