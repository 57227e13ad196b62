package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/id"
)

const shareColumns = `
	id, dealer_id, entity_type, record_ids, channels, trust_levels, contacts,
	message, idempotency_key, created_at
`

func scanShare(row pgx.Row) (*domain.ShareHistoryEntry, error) {
	var (
		entry       domain.ShareHistoryEntry
		channels    []string
		trustLevels []string
	)
	err := row.Scan(
		&entry.ID,
		&entry.DealerID,
		&entry.EntityType,
		&entry.RecordIDs,
		&channels,
		&trustLevels,
		&entry.Contacts,
		&entry.Message,
		&entry.IdempotencyKey,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, c := range channels {
		entry.Channels = append(entry.Channels, domain.Channel(c))
	}
	for _, t := range trustLevels {
		entry.TrustLevels = append(entry.TrustLevels, domain.TrustLevel(t))
	}
	return &entry, nil
}

// InsertShare writes a single history row covering the whole batch: one row
// per submission, never one per record. When the request carries an
// idempotency key and a row with that key already exists for the dealer, the
// existing row is returned instead of inserting a duplicate. Without the key
// every submission inserts a fresh row, double-clicks included.
func (r *ShareRepo) InsertShare(ctx context.Context, req *domain.ShareRequest) (*domain.ShareHistoryEntry, error) {
	if req.IdempotencyKey != "" {
		existing, err := r.getByIdempotencyKey(ctx, req.DealerID, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	channels := make([]string, 0, len(req.Channels))
	for _, c := range req.Channels {
		channels = append(channels, string(c))
	}
	trustLevels := make([]string, 0, len(req.TrustLevels))
	for _, t := range req.TrustLevels {
		trustLevels = append(trustLevels, string(t))
	}

	var idempotencyKey *string
	if req.IdempotencyKey != "" {
		idempotencyKey = &req.IdempotencyKey
	}

	query := `
		INSERT INTO share_history (
			id, dealer_id, entity_type, record_ids, channels, trust_levels,
			contacts, message, idempotency_key, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + shareColumns

	entry, err := scanShare(r.db.QueryRow(ctx, query,
		id.GenerateID("SHR"),
		req.DealerID,
		req.EntityType,
		req.RecordIDs,
		channels,
		trustLevels,
		req.Contacts,
		req.Message,
		idempotencyKey,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert share: %w", err)
	}
	return entry, nil
}

func (r *ShareRepo) getByIdempotencyKey(ctx context.Context, dealerID, key string) (*domain.ShareHistoryEntry, error) {
	query := `
		SELECT ` + shareColumns + `
		FROM share_history
		WHERE dealer_id = $1 AND idempotency_key = $2
	`

	entry, err := scanShare(r.db.QueryRow(ctx, query, dealerID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// ListByDealer fetches every share history entry belonging to the dealer,
// newest first. The full set is returned; the dashboard truncates display
// height, not row count.
func (r *ShareRepo) ListByDealer(ctx context.Context, dealerID string) ([]*domain.ShareHistoryEntry, error) {
	query := `
		SELECT ` + shareColumns + `
		FROM share_history
		WHERE dealer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ShareHistoryEntry
	for rows.Next() {
		entry, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
