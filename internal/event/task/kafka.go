package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
)

const defaultReadTimeout = time.Second

var (
	_ MessageReader = (*KafkaReader)(nil)
	_ Producer      = (*KafkaProducer)(nil)
)

// KafkaReader 从 kafka 读取任务消息，位移由 kafka 客户端自动提交
type KafkaReader struct {
	consumer *kafka.Consumer
	timeout  time.Duration
}

// Consume 超时没有读到消息时返回 nil, nil
func (r *KafkaReader) Consume(ctx context.Context) (*mq.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msg, err := r.consumer.ReadMessage(r.timeout)
	if err != nil {
		var kErr kafka.Error
		if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
			return nil, nil
		}
		return nil, fmt.Errorf("读取任务消息失败: %w", err)
	}
	return toMQMessage(msg), nil
}

func toMQMessage(msg *kafka.Message) *mq.Message {
	res := &mq.Message{
		Partition: int64(msg.TopicPartition.Partition),
		Offset:    int64(msg.TopicPartition.Offset),
		Key:       msg.Key,
		Value:     msg.Value,
	}
	if msg.TopicPartition.Topic != nil {
		res.Topic = *msg.TopicPartition.Topic
	}
	return res
}

func NewKafkaReader(consumer *kafka.Consumer) (*KafkaReader, error) {
	return NewKafkaReaderWithTopic(consumer, EventName)
}

func NewKafkaReaderWithTopic(consumer *kafka.Consumer, topic string) (*KafkaReader, error) {
	if err := consumer.SubscribeTopics([]string{topic}, nil); err != nil {
		return nil, err
	}
	return &KafkaReader{
		consumer: consumer,
		timeout:  defaultReadTimeout,
	}, nil
}

// KafkaProducer 投递任务事件，等到 broker 确认才返回
type KafkaProducer struct {
	producer *kafka.Producer
	topic    string
}

func (p *KafkaProducer) Produce(ctx context.Context, evt Event) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	delivery := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Value:          val,
	}, delivery)
	if err != nil {
		return fmt.Errorf("投递任务事件失败: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-delivery:
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			return fmt.Errorf("投递任务事件失败: %w", m.TopicPartition.Error)
		}
		return nil
	}
}

func NewKafkaProducer(producer *kafka.Producer) *KafkaProducer {
	return NewKafkaProducerWithTopic(producer, EventName)
}

func NewKafkaProducerWithTopic(producer *kafka.Producer, topic string) *KafkaProducer {
	return &KafkaProducer{
		producer: producer,
		topic:    topic,
	}
}
