package sender

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the channel uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter creates a writer for topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// KafkaChannel writes the plain order text to a topic, keyed by session so
// one session's orders stay in order.
type KafkaChannel struct {
	writer MessageWriter
}

func NewKafkaChannel(writer MessageWriter) *KafkaChannel {
	return &KafkaChannel{writer: writer}
}

func (c *KafkaChannel) Name() string { return "kafka" }

func (c *KafkaChannel) Send(ctx context.Context, key, encoded string) (SendResult, error) {
	text, err := decode(encoded)
	if err != nil {
		return SendResult{}, fmt.Errorf("decode message: %w", err)
	}

	now := time.Now()
	msg := kafka.Message{
		Key:   []byte(key),
		Value: []byte(text),
		Time:  now,
	}
	if err := c.writer.WriteMessages(ctx, msg); err != nil {
		return SendResult{}, fmt.Errorf("kafka write failed: %w", err)
	}
	return SendResult{MessageID: fmt.Sprintf("kafka-%d", now.UnixNano()), SentAt: now}, nil
}

func (c *KafkaChannel) Close() error {
	return c.writer.Close()
}
