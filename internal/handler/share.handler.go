package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/usecase"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/auth"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

// shareRequestBody is the wire shape of a share submission. Record IDs arrive
// under an entity-specific key; shared_with_partner_ids selects recipient
// partners (distinct from partner_ids, which are partner RECORDS being shared
// on the partners endpoint).
type shareRequestBody struct {
	OfferIDs   []string `json:"offer_ids,omitempty"`
	LeadIDs    []string `json:"lead_ids,omitempty"`
	PartnerIDs []string `json:"partner_ids,omitempty"`
	RentalIDs  []string `json:"rental_ids,omitempty"`

	DealerID             string   `json:"dealer_id,omitempty"`
	Channels             []string `json:"channels"`
	TrustLevels          []string `json:"shared_with_trust_levels"`
	Contacts             []string `json:"shared_with_contacts"`
	SharedWithPartnerIDs []string `json:"shared_with_partner_ids"`
	Message              string   `json:"message"`
	IdempotencyKey       string   `json:"idempotency_key,omitempty"`
}

func (h *ShareHandler) ShareOffers(w http.ResponseWriter, r *http.Request) {
	h.share(w, r, domain.ShareEntityOffers, func(body *shareRequestBody) []string { return body.OfferIDs })
}

func (h *ShareHandler) ShareLeads(w http.ResponseWriter, r *http.Request) {
	h.share(w, r, domain.ShareEntityLeads, func(body *shareRequestBody) []string { return body.LeadIDs })
}

func (h *ShareHandler) SharePartners(w http.ResponseWriter, r *http.Request) {
	h.share(w, r, domain.ShareEntityPartners, func(body *shareRequestBody) []string { return body.PartnerIDs })
}

func (h *ShareHandler) ShareRentals(w http.ResponseWriter, r *http.Request) {
	h.share(w, r, domain.ShareEntityRentals, func(body *shareRequestBody) []string { return body.RentalIDs })
}

func (h *ShareHandler) share(w http.ResponseWriter, r *http.Request, entity domain.ShareEntity, recordIDs func(*shareRequestBody) []string) {
	ctx := r.Context()

	var body shareRequestBody
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	channels := make([]domain.Channel, 0, len(body.Channels))
	for _, c := range body.Channels {
		channels = append(channels, domain.Channel(c))
	}
	trustLevels := make([]domain.TrustLevel, 0, len(body.TrustLevels))
	for _, t := range body.TrustLevels {
		trustLevels = append(trustLevels, domain.TrustLevel(t))
	}

	// Submission proceeds with an empty dealer ID when the session did not
	// resolve one; ownership enforcement is the database's concern. The body's
	// dealer_id is only a fallback for callers without a session token.
	dealerID := auth.DealerID(ctx)
	if dealerID == "" {
		dealerID = body.DealerID
	}

	req, err := h.uc.Build(ctx, usecase.BuildShareRequestInput{
		Entity:            entity,
		RecordIDs:         recordIDs(&body),
		Channels:          channels,
		TrustLevels:       trustLevels,
		ManualContactsRaw: strings.Join(body.Contacts, ","),
		PartnerIDs:        body.SharedWithPartnerIDs,
		DealerID:          dealerID,
		Message:           body.Message,
		IdempotencyKey:    body.IdempotencyKey,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	entry, err := h.uc.Submit(ctx, req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	h.fanOut(ctx, entry, body.SharedWithPartnerIDs)

	// The dashboard clears its checkboxes after a successful share; drop the
	// synced server-side copy too.
	if entry.DealerID != "" {
		if err := h.selections.Clear(ctx, entry.DealerID, string(entity)); err != nil {
			h.logger.Warn("failed to clear selection after share",
				zap.String("dealer_id", entry.DealerID),
				zap.Error(err))
		}
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"shared_count": len(entry.RecordIDs),
		"share":        entry,
	})
}

// fanOut runs the best-effort post-persist side effects. None of them can
// fail the submission; each logs its own trouble.
func (h *ShareHandler) fanOut(ctx context.Context, entry *domain.ShareHistoryEntry, recipientPartnerIDs []string) {
	if err := h.events.PublishShareCreated(ctx, entry); err != nil {
		h.logger.Warn("share event publish failed", zap.String("share_id", entry.ID), zap.Error(err))
	}

	if h.broadcast != nil {
		if err := h.broadcast.PublishShare(ctx, entry); err != nil {
			h.logger.Warn("share broadcast failed", zap.String("share_id", entry.ID), zap.Error(err))
		}
	}

	if len(recipientPartnerIDs) > 0 {
		partners, err := h.uc.SelectedPartners(ctx, recipientPartnerIDs)
		if err != nil {
			h.logger.Warn("failed to resolve partners for webhook notify",
				zap.String("share_id", entry.ID),
				zap.Error(err))
			return
		}
		// Webhook delivery outlives the request; give it its own deadline.
		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		go func() {
			defer cancel()
			h.webhooks.NotifyPartners(notifyCtx, entry, partners)
		}()
	}
}

// GetShareHistory returns the acting dealer's share history, newest first.
// Unauthenticated requests get an empty list, not an error: history is
// supplementary to the page it hangs on.
func (h *ShareHandler) GetShareHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.uc.History(ctx, auth.DealerID(ctx))
	if err != nil {
		// History is not critical path; degrade to an empty list.
		h.logger.Warn("share history fetch failed", zap.Error(err))
		entries = nil
	}
	if entries == nil {
		entries = []*domain.ShareHistoryEntry{}
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"history": entries,
	})
}
