package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

const offerColumns = `
	id, dealer_id, make, model, year, price, mileage, fuel_type, transmission,
	body_type, color, approval_status, listing_type, created_at, updated_at
`

func scanOffer(row pgx.Row) (*domain.CarOffer, error) {
	var o domain.CarOffer
	err := row.Scan(
		&o.ID,
		&o.DealerID,
		&o.Make,
		&o.Model,
		&o.Year,
		&o.Price,
		&o.Mileage,
		&o.FuelType,
		&o.Transmission,
		&o.BodyType,
		&o.Color,
		&o.ApprovalStatus,
		&o.ListingType,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OfferFilter narrows the offer list. Zero values mean "no filter"; the
// dashboard fetches everything and filters client-side for most columns.
type OfferFilter struct {
	DealerID       string
	ApprovalStatus string
	ListingType    string
}

// GetAllOffers fetches offers matching the filter, newest first. There is no
// pagination on this list.
func (r *OfferRepo) GetAllOffers(ctx context.Context, filter OfferFilter) ([]*domain.CarOffer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM car_offers
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.DealerID != "" {
		query += fmt.Sprintf(" AND dealer_id = $%d", argPos)
		args = append(args, filter.DealerID)
		argPos++
	}
	if filter.ApprovalStatus != "" {
		query += fmt.Sprintf(" AND approval_status = $%d", argPos)
		args = append(args, filter.ApprovalStatus)
		argPos++
	}
	if filter.ListingType != "" {
		query += fmt.Sprintf(" AND listing_type = $%d", argPos)
		args = append(args, filter.ListingType)
		argPos++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*domain.CarOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}

func (r *OfferRepo) GetOfferByID(ctx context.Context, id string) (*domain.CarOffer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM car_offers
		WHERE id = $1
	`

	o, err := scanOffer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("offer %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

var offerFields = map[string]string{
	"make":            "make",
	"model":           "model",
	"year":            "year",
	"price":           "price",
	"mileage":         "mileage",
	"fuel_type":       "fuel_type",
	"transmission":    "transmission",
	"body_type":       "body_type",
	"color":           "color",
	"approval_status": "approval_status",
	"listing_type":    "listing_type",
}

func (r *OfferRepo) UpdateOfferField(ctx context.Context, id, field string, value interface{}) (*domain.CarOffer, error) {
	column, ok := offerFields[field]
	if !ok {
		return nil, fmt.Errorf("field %q is not editable", field)
	}

	query := fmt.Sprintf(`
		UPDATE car_offers
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+offerColumns, column)

	o, err := scanOffer(r.db.QueryRow(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("offer %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

func (r *OfferRepo) DeleteOffer(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM car_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("offer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
