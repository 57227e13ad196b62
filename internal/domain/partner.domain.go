package domain

import (
	"time"
)

type PartnerStatus string

const (
	PartnerStatusActive    PartnerStatus = "active"
	PartnerStatusInactive  PartnerStatus = "inactive"
	PartnerStatusSuspended PartnerStatus = "suspended"
)

func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusActive, PartnerStatusInactive, PartnerStatusSuspended:
		return true
	}
	return false
}

// TrustLevel is a categorical tag describing how much a partner is trusted.
// It is also a broadcast criterion: a share can target "whoever is trusted"
// rather than a specific address. Resolving a trust level into concrete
// recipients happens downstream; this service only records the intent.
type TrustLevel string

const (
	TrustLevelTrusted  TrustLevel = "trusted"
	TrustLevelVerified TrustLevel = "verified"
	TrustLevelFlagged  TrustLevel = "flagged"
	TrustLevelUnrated  TrustLevel = "unrated"
)

func (t TrustLevel) Valid() bool {
	switch t {
	case TrustLevelTrusted, TrustLevelVerified, TrustLevelFlagged, TrustLevelUnrated:
		return true
	}
	return false
}

type Partner struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Country      string        `json:"country"`
	ContactEmail *string       `json:"contact_email"`
	ContactPhone *string       `json:"contact_phone"`
	Status       PartnerStatus `json:"status"`
	TrustLevel   TrustLevel    `json:"trust_level"`
	WebhookURL   *string       `json:"webhook_url,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
