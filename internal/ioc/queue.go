package ioc

import (
	"context"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"notification-dispatch/internal/event/task"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/sender"
)

const (
	BrokerMemory = "memory"
	BrokerKafka  = "kafka"
)

type KafkaConfig struct {
	BootstrapServers string `yaml:"bootstrapServers"`
	GroupID          string `yaml:"groupId"`
}

type TaskQueueConfig struct {
	// Broker memory 只能同进程投递，线上使用 kafka
	Broker     string      `yaml:"broker"`
	Partitions int         `yaml:"partitions"`
	Kafka      KafkaConfig `yaml:"kafka"`
}

// TaskQueue 任务队列的读写两端
type TaskQueue struct {
	Reader   task.MessageReader
	Producer task.Producer
}

func InitTaskQueueConfig() TaskQueueConfig {
	cfg := TaskQueueConfig{
		Broker:     BrokerMemory,
		Partitions: 1,
		Kafka:      KafkaConfig{GroupID: task.ConsumerGroup},
	}
	unmarshalOptional("task", &cfg)
	return cfg
}

func InitTaskQueue(cfg TaskQueueConfig) TaskQueue {
	var (
		q   TaskQueue
		err error
	)
	switch cfg.Broker {
	case BrokerMemory:
		q, err = initMemoryTaskQueue(cfg.Partitions)
	case BrokerKafka:
		q, err = initKafkaTaskQueue(cfg.Kafka)
	default:
		err = fmt.Errorf("未知的任务队列类型: %s", cfg.Broker)
	}
	if err != nil {
		panic(err)
	}
	return q
}

func initMemoryTaskQueue(partitions int) (TaskQueue, error) {
	q := memory.NewMQ()
	if err := q.CreateTopic(context.Background(), task.EventName, partitions); err != nil {
		return TaskQueue{}, err
	}
	reader, err := q.Consumer(task.EventName, task.ConsumerGroup)
	if err != nil {
		return TaskQueue{}, err
	}
	producer, err := task.NewProducer(q)
	if err != nil {
		return TaskQueue{}, err
	}
	return TaskQueue{Reader: reader, Producer: producer}, nil
}

func initKafkaTaskQueue(cfg KafkaConfig) (TaskQueue, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.BootstrapServers,
		"group.id":          cfg.GroupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return TaskQueue{}, err
	}
	reader, err := task.NewKafkaReader(consumer)
	if err != nil {
		return TaskQueue{}, err
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.BootstrapServers,
	})
	if err != nil {
		return TaskQueue{}, err
	}
	return TaskQueue{Reader: reader, Producer: task.NewKafkaProducer(producer)}, nil
}

func InitTaskConsumer(svc sender.TaskSender, registry *channel.Registry, q TaskQueue) *task.Consumer {
	return task.NewConsumerWithReader(svc, registry, q.Reader)
}

// InitTaskProducer 同进程的上游通过它投递任务
func InitTaskProducer(q TaskQueue) task.Producer {
	return q.Producer
}
