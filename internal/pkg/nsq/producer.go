package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/freightdesk/internal/pkg/logger"
)

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/piresc/freightdesk/internal/pkg/nsq Publisher

// Publisher publishes domain events
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
	Stop()
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// NewPublisher returns an NSQ producer, or a no-op publisher when address is empty
func NewPublisher(address string) (Publisher, error) {
	if address == "" {
		logger.Info("NSQ address not configured, domain events disabled")
		return NoopPublisher{}, nil
	}
	return NewProducer(address)
}

// Publish sends a message to the specified topic
func (p *Producer) Publish(ctx context.Context, topic string, message interface{}) error {
	body, err := encode(message)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published event", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// NoopPublisher drops every event
type NoopPublisher struct{}

// Publish validates that the message encodes and drops it
func (NoopPublisher) Publish(_ context.Context, topic string, message interface{}) error {
	if _, err := encode(message); err != nil {
		return err
	}
	logger.Debug("Event dropped, publisher disabled", logger.String("topic", topic))
	return nil
}

// Stop is a no-op
func (NoopPublisher) Stop() {}

func encode(message interface{}) ([]byte, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return body, nil
}
