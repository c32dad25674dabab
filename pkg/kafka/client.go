// Package kafka publishes query analytics events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"

	"github.com/hardeep652/sihhackathon/internal/config"
	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/hardeep652/sihhackathon/pkg/log"
	"github.com/segmentio/kafka-go"
)

// Producer wraps a kafka writer for query events. Analytics are consumed by
// a separate pipeline; this service only produces.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a Producer for the configured brokers and topic.
func NewProducer(cfg config.KafkaConfig) *Producer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Infof("Kafka producer initialized, topic '%s'", cfg.Topic)
	return &Producer{writer: w}
}

// PublishQueryEvent sends one query event. Failures are the caller's to
// ignore: analytics must never affect the answer path.
func (p *Producer) PublishQueryEvent(ctx context.Context, event model.QueryEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{Value: value})
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
