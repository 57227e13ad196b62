package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

const (
	// Channel names
	ChannelShareCreated = "admin:share:created"
	ChannelRecordEvent  = "admin:record:event"
)

type EventPublisher struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewEventPublisher(rdb *redis.Client, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		rdb:    rdb,
		logger: logger,
	}
}

// ShareCreatedEvent announces a persisted share so downstream delivery
// workers can pick it up.
type ShareCreatedEvent struct {
	EventType   string   `json:"event_type"`
	ShareID     string   `json:"share_id"`
	DealerID    string   `json:"dealer_id"`
	EntityType  string   `json:"entity_type"`
	RecordIDs   []string `json:"record_ids"`
	Channels    []string `json:"channels"`
	TrustLevels []string `json:"trust_levels"`
	Contacts    []string `json:"contacts"`
	Timestamp   int64    `json:"timestamp"`
}

// PublishShareCreated publishes a share created event.
func (p *EventPublisher) PublishShareCreated(ctx context.Context, entry *domain.ShareHistoryEntry) error {
	event := ShareCreatedEvent{
		EventType:  "share.created",
		ShareID:    entry.ID,
		DealerID:   entry.DealerID,
		EntityType: string(entry.EntityType),
		RecordIDs:  entry.RecordIDs,
		Contacts:   entry.Contacts,
		Timestamp:  time.Now().Unix(),
	}
	for _, c := range entry.Channels {
		event.Channels = append(event.Channels, string(c))
	}
	for _, t := range entry.TrustLevels {
		event.TrustLevels = append(event.TrustLevels, string(t))
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal share created event",
			zap.String("share_id", entry.ID),
			zap.Error(err))
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.rdb.Publish(ctx, ChannelShareCreated, payload).Err(); err != nil {
		p.logger.Error("failed to publish share created event",
			zap.String("share_id", entry.ID),
			zap.Error(err))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	// Also publish to the general record event channel
	if err := p.rdb.Publish(ctx, ChannelRecordEvent, payload).Err(); err != nil {
		p.logger.Warn("failed to publish to general channel",
			zap.String("share_id", entry.ID),
			zap.Error(err))
	}

	p.logger.Info("share created event published",
		zap.String("share_id", entry.ID),
		zap.String("dealer_id", entry.DealerID),
		zap.String("entity_type", string(entry.EntityType)),
		zap.Int("record_count", len(entry.RecordIDs)))

	return nil
}
