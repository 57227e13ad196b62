package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

const partnerColumns = `
	id, name, country, contact_email, contact_phone, status, trust_level,
	webhook_url, created_at, updated_at
`

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	var p domain.Partner
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Country,
		&p.ContactEmail,
		&p.ContactPhone,
		&p.Status,
		&p.TrustLevel,
		&p.WebhookURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetActivePartners returns the partner directory used to pick share
// recipients: active partners only, ordered by name.
func (r *PartnerRepo) GetActivePartners(ctx context.Context) ([]*domain.Partner, error) {
	query := `
		SELECT ` + partnerColumns + `
		FROM partners
		WHERE status = 'active'
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []*domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, rows.Err()
}

// GetAllPartners fetches every partner regardless of status, for the partner
// management list.
func (r *PartnerRepo) GetAllPartners(ctx context.Context) ([]*domain.Partner, error) {
	query := `
		SELECT ` + partnerColumns + `
		FROM partners
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []*domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, rows.Err()
}

// GetPartnersByIDs fetches partners by a list of IDs. Unknown IDs are simply
// absent from the result.
func (r *PartnerRepo) GetPartnersByIDs(ctx context.Context, partnerIDs []string) ([]*domain.Partner, error) {
	if len(partnerIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + partnerColumns + `
		FROM partners
		WHERE id = ANY($1)
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query, partnerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []*domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, rows.Err()
}

func (r *PartnerRepo) GetPartnerByID(ctx context.Context, id string) (*domain.Partner, error) {
	query := `
		SELECT ` + partnerColumns + `
		FROM partners
		WHERE id = $1
	`

	p, err := scanPartner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("partner %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// partnerFields maps editable field names to their columns. Anything outside
// this map is rejected before SQL is built.
var partnerFields = map[string]string{
	"name":          "name",
	"country":       "country",
	"contact_email": "contact_email",
	"contact_phone": "contact_phone",
	"status":        "status",
	"trust_level":   "trust_level",
	"webhook_url":   "webhook_url",
}

// UpdatePartnerField updates a single inline-editable field.
func (r *PartnerRepo) UpdatePartnerField(ctx context.Context, id, field string, value interface{}) (*domain.Partner, error) {
	column, ok := partnerFields[field]
	if !ok {
		return nil, fmt.Errorf("field %q is not editable", field)
	}

	query := fmt.Sprintf(`
		UPDATE partners
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+partnerColumns, column)

	p, err := scanPartner(r.db.QueryRow(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("partner %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *PartnerRepo) DeletePartner(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("partner %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
