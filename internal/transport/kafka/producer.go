package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"shiphub/internal/domain"
)

var newSyncProducer = sarama.NewSyncProducer

// Publisher sends request events to Kafka keyed by request id, so every
// change to one request lands on the same partition in commit order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a Publisher. It returns nil, nil when brokers or topic
// are not configured; a nil Publisher drops every event.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = "shiphub"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return NewPublisherWithProducer(p, topic), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(p sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: p, topic: topic}
}

// Publish sends one event. Encoding failures are permanent.
func (p *Publisher) Publish(ctx context.Context, ev domain.RequestEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(FromDomain(ev))
	if err != nil {
		return Permanent(fmt.Errorf("encode request event: %w", err))
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.RequestID),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(ev.Kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("send request event %s: %w", ev.RequestID, err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
