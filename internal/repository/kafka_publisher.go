package repository

import (
	"context"
	"fmt"

	"RegimeCast/internal/domain/models"
	pkgkafka "RegimeCast/pkg/kafka"
)

// KafkaAuditPublisher emits execution audit events to a Kafka topic. Events
// are observability-only; nothing in the system consumes them back.
type KafkaAuditPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaAuditPublisher(producer *pkgkafka.Producer, topic string) *KafkaAuditPublisher {
	return &KafkaAuditPublisher{producer: producer, topic: topic}
}

func (p *KafkaAuditPublisher) PublishExecution(ctx context.Context, event models.AuditEvent) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(event.Query), event); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}

// KafkaLogPublisher adapts the Kafka producer to the log collector's
// Publisher interface so aggregated error logs flow to their own topic.
type KafkaLogPublisher struct {
	producer *pkgkafka.Producer
}

func NewKafkaLogPublisher(producer *pkgkafka.Producer) *KafkaLogPublisher {
	return &KafkaLogPublisher{producer: producer}
}

func (p *KafkaLogPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}
