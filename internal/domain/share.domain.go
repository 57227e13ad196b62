package domain

import (
	"time"
)

// Channel is a delivery medium for a broadcast share, independent of any
// specific recipient address.
type Channel string

const (
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelEmail    Channel = "Email"
	ChannelSlack    Channel = "Slack"
	ChannelTelegram Channel = "Telegram"
	ChannelSMS      Channel = "SMS"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelWhatsApp, ChannelEmail, ChannelSlack, ChannelTelegram, ChannelSMS:
		return true
	}
	return false
}

// ShareEntity names the record collection a share request targets.
type ShareEntity string

const (
	ShareEntityOffers   ShareEntity = "offers"
	ShareEntityLeads    ShareEntity = "leads"
	ShareEntityPartners ShareEntity = "partners"
	ShareEntityRentals  ShareEntity = "rentals"
)

func (e ShareEntity) Valid() bool {
	switch e {
	case ShareEntityOffers, ShareEntityLeads, ShareEntityPartners, ShareEntityRentals:
		return true
	}
	return false
}

// ShareRequest is the assembled payload describing which records to broadcast
// and to whom. Channels and trust levels are carried verbatim; contacts are the
// flattened manual + partner contact list.
type ShareRequest struct {
	EntityType  ShareEntity
	RecordIDs   []string
	DealerID    string
	Channels    []Channel
	TrustLevels []TrustLevel
	Contacts    []string
	Message     string

	// IdempotencyKey is an opt-in guard against double submission. When empty
	// (the default) resubmitting the same logical share creates a second,
	// distinct history entry.
	IdempotencyKey string
}

// ShareHistoryEntry is the append-only audit row written by a successful share.
// One entry covers the whole batch; it is never mutated or deleted.
type ShareHistoryEntry struct {
	ID             string       `json:"id"`
	DealerID       string       `json:"dealer_id"`
	EntityType     ShareEntity  `json:"entity_type"`
	RecordIDs      []string     `json:"record_ids"`
	Channels       []Channel    `json:"channels"`
	TrustLevels    []TrustLevel `json:"shared_with_trust_levels"`
	Contacts       []string     `json:"shared_with_contacts"`
	Message        string       `json:"message"`
	IdempotencyKey *string      `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}
