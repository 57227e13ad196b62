package domain

import (
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

type RentalReservation struct {
	ID         string            `json:"id"`
	ClientID   string            `json:"client_id"`
	OfferID    string            `json:"offer_id"`
	StartDate  time.Time         `json:"start_date"`
	EndDate    time.Time         `json:"end_date"`
	Status     ReservationStatus `json:"status"`
	TotalPrice float64           `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "active"
	ClientStatusBlocked ClientStatus = "blocked"
)

func (s ClientStatus) Valid() bool {
	return s == ClientStatusActive || s == ClientStatusBlocked
}

type RentalClient struct {
	ID        string       `json:"id"`
	FullName  string       `json:"full_name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
