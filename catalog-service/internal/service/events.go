package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// publishTimeout bounds how long a write request waits on its event.
var publishTimeout = time.Second

// EventPublisher announces catalog changes to other services.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// eventKey builds keys like "user.created.12" or "product.deleted.3".
func eventKey(entity, action string, id int) string {
	return fmt.Sprintf("%s.%s.%d", entity, action, id)
}

// DeletedEvent is the payload of "<entity>.deleted.<id>" events.
type DeletedEvent struct {
	ID int `json:"id"`
}

// publishEvent only logs failures: the row change is already committed.
func publishEvent(ctx context.Context, events EventPublisher, logger zerolog.Logger, key string, payload any) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := events.Publish(ctx, key, payload); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Error publishing catalog event")
	}
}

// KafkaPublisher writes JSON encoded events to a kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}

	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes pending messages.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
