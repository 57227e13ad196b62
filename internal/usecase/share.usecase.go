package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

// ShareStore is the persistence surface the share workflow needs. The
// postgres repository implements it; tests use an in-memory fake.
type ShareStore interface {
	InsertShare(ctx context.Context, req *domain.ShareRequest) (*domain.ShareHistoryEntry, error)
	ListByDealer(ctx context.Context, dealerID string) ([]*domain.ShareHistoryEntry, error)
}

// PartnerDirectory resolves partner selections into partner records.
type PartnerDirectory interface {
	GetActivePartners(ctx context.Context) ([]*domain.Partner, error)
	GetPartnersByIDs(ctx context.Context, partnerIDs []string) ([]*domain.Partner, error)
}

// ShareOptions tune how share requests are assembled.
type ShareOptions struct {
	// DefaultMessage fills the message field when the caller leaves it blank.
	DefaultMessage string
	// DedupeContacts removes duplicate contacts at aggregation. Off by
	// default: duplicate delivery is the dashboard's observed behavior.
	DedupeContacts bool
}

type ShareUsecase struct {
	shares   ShareStore
	partners PartnerDirectory
	opts     ShareOptions
}

func NewShareUsecase(shares ShareStore, partners PartnerDirectory, opts ShareOptions) *ShareUsecase {
	return &ShareUsecase{
		shares:   shares,
		partners: partners,
		opts:     opts,
	}
}

// BuildShareRequest assembles the final share payload from the dashboard's
// raw selections. Validation short-circuits in a fixed order: no records
// selected first, then no share target. On success the contact list is
// manual contacts followed by partner contacts, in that order.
func BuildShareRequest(
	entity domain.ShareEntity,
	recordIDs []string,
	channels []domain.Channel,
	trustLevels []domain.TrustLevel,
	manualContactsRaw string,
	partnerIDs []string,
	partners []*domain.Partner,
	dealerID, message string,
	opts ShareOptions,
) (*domain.ShareRequest, error) {
	if len(recordIDs) == 0 {
		return nil, domain.ErrNoRecordsSelected
	}

	hasTarget := len(channels) > 0 ||
		len(trustLevels) > 0 ||
		strings.TrimSpace(manualContactsRaw) != "" ||
		len(partnerIDs) > 0
	if !hasTarget {
		return nil, domain.ErrNoShareTargetSelected
	}

	contacts := append(
		ResolveManualContacts(manualContactsRaw),
		ResolvePartnerContacts(partnerIDs, partners)...,
	)
	if opts.DedupeContacts {
		contacts = dedupeContacts(contacts)
	}

	if message == "" {
		message = opts.DefaultMessage
	}

	return &domain.ShareRequest{
		EntityType:  entity,
		RecordIDs:   recordIDs,
		DealerID:    dealerID,
		Channels:    channels,
		TrustLevels: trustLevels,
		Contacts:    contacts,
		Message:     message,
	}, nil
}

// BuildShareRequestInput is the raw dashboard selection for one submission.
type BuildShareRequestInput struct {
	Entity            domain.ShareEntity
	RecordIDs         []string
	Channels          []domain.Channel
	TrustLevels       []domain.TrustLevel
	ManualContactsRaw string
	PartnerIDs        []string
	DealerID          string
	Message           string
	IdempotencyKey    string
}

// Build resolves the selected partner IDs through the directory and assembles
// the share request.
func (uc *ShareUsecase) Build(ctx context.Context, input BuildShareRequestInput) (*domain.ShareRequest, error) {
	var partners []*domain.Partner
	if len(input.PartnerIDs) > 0 {
		var err error
		partners, err = uc.partners.GetPartnersByIDs(ctx, input.PartnerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve partners: %w", err)
		}
	}

	req, err := BuildShareRequest(
		input.Entity,
		input.RecordIDs,
		input.Channels,
		input.TrustLevels,
		input.ManualContactsRaw,
		input.PartnerIDs,
		partners,
		input.DealerID,
		input.Message,
		uc.opts,
	)
	if err != nil {
		return nil, err
	}
	req.IdempotencyKey = input.IdempotencyKey
	return req, nil
}

// Submit revalidates the request server-side and persists a single history
// row for the whole batch. There is no automatic retry and, unless the
// request carries an idempotency key, no duplicate suppression: submitting
// the same logical share twice yields two distinct history rows.
func (uc *ShareUsecase) Submit(ctx context.Context, req *domain.ShareRequest) (*domain.ShareHistoryEntry, error) {
	if len(req.RecordIDs) == 0 {
		return nil, domain.ErrNoRecordsSelected
	}
	if len(req.Channels) == 0 && len(req.TrustLevels) == 0 && len(req.Contacts) == 0 {
		return nil, domain.ErrNoShareTargetSelected
	}
	if !req.EntityType.Valid() {
		return nil, fmt.Errorf("unknown share entity %q", req.EntityType)
	}
	for _, c := range req.Channels {
		if !c.Valid() {
			return nil, fmt.Errorf("unknown channel %q", c)
		}
	}
	for _, t := range req.TrustLevels {
		if !t.Valid() {
			return nil, fmt.Errorf("unknown trust level %q", t)
		}
	}

	return uc.shares.InsertShare(ctx, req)
}

// History returns the acting dealer's share history, newest first. An empty
// dealer ID yields an empty list without error: history is supplementary and
// an unresolved identity must not break the page.
func (uc *ShareUsecase) History(ctx context.Context, dealerID string) ([]*domain.ShareHistoryEntry, error) {
	if dealerID == "" {
		return nil, nil
	}
	return uc.shares.ListByDealer(ctx, dealerID)
}

// ActivePartners exposes the partner directory for recipient selection.
func (uc *ShareUsecase) ActivePartners(ctx context.Context) ([]*domain.Partner, error) {
	return uc.partners.GetActivePartners(ctx)
}

// SelectedPartners resolves partner IDs to full records, e.g. for webhook
// notification after a share.
func (uc *ShareUsecase) SelectedPartners(ctx context.Context, partnerIDs []string) ([]*domain.Partner, error) {
	if len(partnerIDs) == 0 {
		return nil, nil
	}
	return uc.partners.GetPartnersByIDs(ctx, partnerIDs)
}
