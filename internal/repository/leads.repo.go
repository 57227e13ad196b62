package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

const leadColumns = `
	id, dealer_id, customer_name, email, phone, offer_id, status, contacted,
	notes, created_at, updated_at
`

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(
		&l.ID,
		&l.DealerID,
		&l.CustomerName,
		&l.Email,
		&l.Phone,
		&l.OfferID,
		&l.Status,
		&l.Contacted,
		&l.Notes,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

type LeadFilter struct {
	DealerID string
	Status   string
}

// GetAllLeads fetches leads matching the filter, newest first. Like offers,
// the lead list is unpaginated.
func (r *LeadRepo) GetAllLeads(ctx context.Context, filter LeadFilter) ([]*domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.DealerID != "" {
		query += fmt.Sprintf(" AND dealer_id = $%d", argPos)
		args = append(args, filter.DealerID)
		argPos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

var leadFields = map[string]string{
	"customer_name": "customer_name",
	"email":         "email",
	"phone":         "phone",
	"status":        "status",
	"contacted":     "contacted",
	"notes":         "notes",
}

func (r *LeadRepo) UpdateLeadField(ctx context.Context, id, field string, value interface{}) (*domain.Lead, error) {
	column, ok := leadFields[field]
	if !ok {
		return nil, fmt.Errorf("field %q is not editable", field)
	}

	query := fmt.Sprintf(`
		UPDATE leads
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+leadColumns, column)

	l, err := scanLead(r.db.QueryRow(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

func (r *LeadRepo) DeleteLead(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
