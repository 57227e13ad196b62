package handler

import (
	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/broadcast"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/events"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/selection"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/usecase"
)

// ShareHandler serves the share submission endpoints, the share history view
// and the partner directory.
type ShareHandler struct {
	uc         *usecase.ShareUsecase
	events     *events.EventPublisher
	broadcast  *broadcast.Publisher // nil when AMQP is not configured
	webhooks   *broadcast.WebhookNotifier
	selections *selection.RedisStore
	logger     *zap.Logger
}

func NewShareHandler(
	uc *usecase.ShareUsecase,
	eventPublisher *events.EventPublisher,
	broadcastPublisher *broadcast.Publisher,
	webhooks *broadcast.WebhookNotifier,
	selections *selection.RedisStore,
	logger *zap.Logger,
) *ShareHandler {
	return &ShareHandler{
		uc:         uc,
		events:     eventPublisher,
		broadcast:  broadcastPublisher,
		webhooks:   webhooks,
		selections: selections,
		logger:     logger,
	}
}

type OfferHandler struct {
	uc *usecase.OfferUsecase
}

func NewOfferHandler(uc *usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

type LeadHandler struct {
	uc *usecase.LeadUsecase
}

func NewLeadHandler(uc *usecase.LeadUsecase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

type PartnerHandler struct {
	uc     *usecase.PartnerUsecase
	logger *zap.Logger
}

func NewPartnerHandler(uc *usecase.PartnerUsecase, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{uc: uc, logger: logger}
}

type RentalHandler struct {
	uc *usecase.RentalUsecase
}

func NewRentalHandler(uc *usecase.RentalUsecase) *RentalHandler {
	return &RentalHandler{uc: uc}
}

// SelectionHandler syncs checkbox state between dashboard views.
type SelectionHandler struct {
	store *selection.RedisStore
}

func NewSelectionHandler(store *selection.RedisStore) *SelectionHandler {
	return &SelectionHandler{store: store}
}

// ExportHandler produces XLSX downloads of dashboard lists.
type ExportHandler struct {
	offers *usecase.OfferUsecase
	shares *usecase.ShareUsecase
}

func NewExportHandler(offers *usecase.OfferUsecase, shares *usecase.ShareUsecase) *ExportHandler {
	return &ExportHandler{offers: offers, shares: shares}
}
