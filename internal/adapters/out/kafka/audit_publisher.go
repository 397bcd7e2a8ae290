// Package kafka publishes audit records to a Kafka topic. Publishing is
// fire-and-forget: a broker outage is logged and swallowed, never failing the
// business mutation that triggered the record.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts the kafka-go writer for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// auditEvent is the wire envelope for one audit record.
type auditEvent struct {
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	ActorID    string    `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// AuditPublisher writes audit records to a Kafka topic.
//
// Example:
//
//	writer := &kafka.Writer{
//	    Addr:     kafka.TCP(cfg.KafkaHost),
//	    Topic:    cfg.KafkaAuditTopic,
//	    Balancer: &kafka.LeastBytes{},
//	}
//	publisher := NewAuditPublisher(writer, logger)
//	defer writer.Close()
type AuditPublisher struct {
	writer messageWriter
	logger *slog.Logger
	now    func() time.Time
}

// NewAuditPublisher creates a publisher on top of a configured kafka writer.
func NewAuditPublisher(writer messageWriter, logger *slog.Logger) *AuditPublisher {
	return &AuditPublisher{
		writer: writer,
		logger: logger.With("component", "audit_publisher"),
		now:    time.Now,
	}
}

// Record publishes one audit record, keyed by entity ID so records for the
// same entity stay ordered within a partition. Failures are logged and
// dropped.
func (p *AuditPublisher) Record(
	ctx context.Context,
	action ports.AuditAction,
	entityType string,
	entityID, actorID kernel.UUID,
) {
	event := auditEvent{
		Action:     string(action),
		EntityType: entityType,
		EntityID:   entityID.String(),
		ActorID:    actorID.String(),
		OccurredAt: p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode audit event", "error", err, "action", event.Action)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish audit event",
			"error", err,
			"action", event.Action,
			"entityType", event.EntityType,
			"entityId", event.EntityID,
		)
	}
}
