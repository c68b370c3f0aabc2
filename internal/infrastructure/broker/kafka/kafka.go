// Package kafka implements the MessageBroker port over segmentio/kafka-go.
// The producer is constructed once at startup and injected; its lifecycle is
// owned by the process entry point.
package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/mernspace/catalog-service/internal/core/ports"
)

// Config captures the settings for the Kafka producer.
type Config struct {
	Brokers  []string
	ClientID string
}

// Producer publishes messages to Kafka. Writes are synchronous: SendMessage
// does not return until the broker has acknowledged the record.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer builds a producer for the given brokers. The topic is carried
// per message, so one producer serves every topic the service publishes to.
func NewProducer(cfg Config) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Transport: &kafka.Transport{
				ClientID: cfg.ClientID,
			},
		},
	}
}

// SendMessage publishes one record and waits for broker acknowledgement.
// Keyed messages land on a deterministic partition, preserving per-entity
// ordering for consumers.
func (p *Producer) SendMessage(ctx context.Context, msg ports.Message) error {
	record := kafka.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Value,
	}
	for k, v := range msg.Headers {
		record.Headers = append(record.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, record); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// Close flushes pending writes and releases the connection.
func (p *Producer) Close() error {
	return p.writer.Close()
}
