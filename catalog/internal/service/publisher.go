package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/pkg/circuit_breaker"
)

type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}

const (
	cbRecordLength     = 10
	cbTimeout          = 10 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 2
)

// KafkaPublisher sends catalog events to a topic. While the broker keeps
// failing the breaker rejects sends without touching the network.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
	}
}

func (p *KafkaPublisher) Publish(_ context.Context, event model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ID),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

// NopPublisher drops events; used when publishing is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.Event) error { return nil }
