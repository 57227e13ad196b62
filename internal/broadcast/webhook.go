package broadcast

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

const (
	webhookTimeout     = 10 * time.Second
	maxConcurrentPosts = 4
)

// WebhookNotifier POSTs share notifications to partners that registered a
// webhook URL. Delivery is best-effort: failures are logged and swallowed.
type WebhookNotifier struct {
	client *resty.Client
	logger *zap.Logger
}

func NewWebhookNotifier(logger *zap.Logger) *WebhookNotifier {
	client := resty.New().
		SetTimeout(webhookTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "premiumcars-admin/1.0")

	return &WebhookNotifier{
		client: client,
		logger: logger,
	}
}

type webhookPayload struct {
	Event       string   `json:"event"`
	ShareID     string   `json:"share_id"`
	EntityType  string   `json:"entity_type"`
	RecordIDs   []string `json:"record_ids"`
	Message     string   `json:"message"`
	SharedCount int      `json:"shared_count"`
}

// NotifyPartners delivers the share notification to each partner with a
// webhook URL. Partners without one are skipped.
func (n *WebhookNotifier) NotifyPartners(ctx context.Context, entry *domain.ShareHistoryEntry, partners []*domain.Partner) {
	payload := webhookPayload{
		Event:       "share.created",
		ShareID:     entry.ID,
		EntityType:  string(entry.EntityType),
		RecordIDs:   entry.RecordIDs,
		Message:     entry.Message,
		SharedCount: len(entry.RecordIDs),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPosts)

	for _, partner := range partners {
		if partner.WebhookURL == nil || *partner.WebhookURL == "" {
			continue
		}
		partner := partner
		g.Go(func() error {
			resp, err := n.client.R().
				SetContext(ctx).
				SetBody(payload).
				Post(*partner.WebhookURL)
			if err != nil {
				n.logger.Warn("partner webhook delivery failed",
					zap.String("partner_id", partner.ID),
					zap.String("share_id", entry.ID),
					zap.Error(err))
				return nil
			}
			if resp.IsError() {
				n.logger.Warn("partner webhook rejected notification",
					zap.String("partner_id", partner.ID),
					zap.String("share_id", entry.ID),
					zap.Int("status_code", resp.StatusCode()))
				return nil
			}

			n.logger.Info("partner webhook notified",
				zap.String("partner_id", partner.ID),
				zap.String("share_id", entry.ID))
			return nil
		})
	}

	// Goroutines never return errors; Wait only fences the group.
	_ = g.Wait()
}
