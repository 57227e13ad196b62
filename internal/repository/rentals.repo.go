package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

const reservationColumns = `
	id, client_id, offer_id, start_date, end_date, status, total_price,
	created_at, updated_at
`

func scanReservation(row pgx.Row) (*domain.RentalReservation, error) {
	var res domain.RentalReservation
	err := row.Scan(
		&res.ID,
		&res.ClientID,
		&res.OfferID,
		&res.StartDate,
		&res.EndDate,
		&res.Status,
		&res.TotalPrice,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListReservations returns one page of rental reservations plus the total row
// count. Reservations are the one list the dashboard paginates server-side.
func (r *RentalRepo) ListReservations(ctx context.Context, limit, offset int) ([]*domain.RentalReservation, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rental_reservations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	query := `
		SELECT ` + reservationColumns + `
		FROM rental_reservations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reservations []*domain.RentalReservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, res)
	}

	return reservations, total, rows.Err()
}

var reservationFields = map[string]string{
	"start_date":  "start_date",
	"end_date":    "end_date",
	"status":      "status",
	"total_price": "total_price",
}

func (r *RentalRepo) UpdateReservationField(ctx context.Context, id, field string, value interface{}) (*domain.RentalReservation, error) {
	column, ok := reservationFields[field]
	if !ok {
		return nil, fmt.Errorf("field %q is not editable", field)
	}

	query := fmt.Sprintf(`
		UPDATE rental_reservations
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+reservationColumns, column)

	res, err := scanReservation(r.db.QueryRow(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("reservation %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return res, nil
}

func (r *RentalRepo) DeleteReservation(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rental_reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const clientColumns = `
	id, full_name, email, phone, status, created_at, updated_at
`

func scanClient(row pgx.Row) (*domain.RentalClient, error) {
	var c domain.RentalClient
	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClients returns one page of rental clients plus the total row count.
func (r *RentalRepo) ListClients(ctx context.Context, limit, offset int) ([]*domain.RentalClient, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rental_clients`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := `
		SELECT ` + clientColumns + `
		FROM rental_clients
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []*domain.RentalClient
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}

	return clients, total, rows.Err()
}

var clientFields = map[string]string{
	"full_name": "full_name",
	"email":     "email",
	"phone":     "phone",
	"status":    "status",
}

func (r *RentalRepo) UpdateClientField(ctx context.Context, id, field string, value interface{}) (*domain.RentalClient, error) {
	column, ok := clientFields[field]
	if !ok {
		return nil, fmt.Errorf("field %q is not editable", field)
	}

	query := fmt.Sprintf(`
		UPDATE rental_clients
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+clientColumns, column)

	c, err := scanClient(r.db.QueryRow(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}
