// Package broadcast fans a persisted share out to the partner network: an
// AMQP envelope for delivery workers and direct webhook notifications for
// partners that registered a callback URL. Everything here is best-effort;
// a broadcast failure never fails the share submission that triggered it.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

// Envelope is the wire format published to the share exchange.
type Envelope struct {
	ID          string                    `json:"id"`
	Type        string                    `json:"type"`
	OccurredAt  time.Time                 `json:"occurred_at"`
	Share       *domain.ShareHistoryEntry `json:"share"`
	SharedCount int                       `json:"shared_count"`
}

// Publisher publishes share envelopes to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *zap.Logger
}

// NewPublisher dials the broker and declares the share exchange. Callers
// should treat a nil publisher as "broadcast disabled".
func NewPublisher(amqpURL, exchange string, logger *zap.Logger) (*Publisher, error) {
	if amqpURL == "" {
		return nil, fmt.Errorf("amqp URL is required")
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare share exchange: %w", err)
	}

	logger.Info("broadcast publisher ready", zap.String("exchange", exchange))

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// PublishShare publishes the persisted share entry with routing key
// share.created.<entity>.
func (p *Publisher) PublishShare(ctx context.Context, entry *domain.ShareHistoryEntry) error {
	env := Envelope{
		ID:          uuid.NewString(),
		Type:        "share.created",
		OccurredAt:  time.Now().UTC(),
		Share:       entry,
		SharedCount: len(entry.RecordIDs),
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	routingKey := fmt.Sprintf("share.created.%s", entry.EntityType)

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    env.ID,
		Type:         env.Type,
		Timestamp:    env.OccurredAt,
	})
	if err != nil {
		p.logger.Error("failed to publish share envelope",
			zap.String("share_id", entry.ID),
			zap.String("routing_key", routingKey),
			zap.Error(err))
		return fmt.Errorf("publish share envelope: %w", err)
	}

	p.logger.Info("share envelope published",
		zap.String("share_id", entry.ID),
		zap.String("routing_key", routingKey))

	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
