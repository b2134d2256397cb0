package config

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter returns nil when no brokers are configured.
//
// The writer is asynchronous: WriteMessages only queues, and delivery
// failures are reported to logger once the batch completes.
func NewKafkaWriter(brokers []string, topic string, logger zerolog.Logger) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		MaxAttempts:            3,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err == nil {
				return
			}
			for _, msg := range messages {
				logger.Warn().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Msg("Error delivering catalog event")
			}
		},
	}
}
