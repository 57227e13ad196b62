package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

type RentalStore interface {
	ListReservations(ctx context.Context, limit, offset int) ([]*domain.RentalReservation, int64, error)
	UpdateReservationField(ctx context.Context, id, field string, value interface{}) (*domain.RentalReservation, error)
	DeleteReservation(ctx context.Context, id string) error
	ListClients(ctx context.Context, limit, offset int) ([]*domain.RentalClient, int64, error)
	UpdateClientField(ctx context.Context, id, field string, value interface{}) (*domain.RentalClient, error)
}

type RentalUsecase struct {
	rentals RentalStore
}

func NewRentalUsecase(rentals RentalStore) *RentalUsecase {
	return &RentalUsecase{rentals: rentals}
}

func (uc *RentalUsecase) ListReservations(ctx context.Context, limit, offset int) ([]*domain.RentalReservation, int64, error) {
	return uc.rentals.ListReservations(ctx, limit, offset)
}

func (uc *RentalUsecase) UpdateReservationField(ctx context.Context, id, field string, value interface{}) (*domain.RentalReservation, error) {
	if id == "" {
		return nil, errors.New("missing reservation id")
	}

	if field == "status" {
		s, ok := value.(string)
		if !ok || !domain.ReservationStatus(s).Valid() {
			return nil, fmt.Errorf("invalid status %v", value)
		}
	}

	return uc.rentals.UpdateReservationField(ctx, id, field, value)
}

func (uc *RentalUsecase) RemoveReservation(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing reservation id")
	}
	return uc.rentals.DeleteReservation(ctx, id)
}

func (uc *RentalUsecase) ListClients(ctx context.Context, limit, offset int) ([]*domain.RentalClient, int64, error) {
	return uc.rentals.ListClients(ctx, limit, offset)
}

func (uc *RentalUsecase) UpdateClientField(ctx context.Context, id, field string, value interface{}) (*domain.RentalClient, error) {
	if id == "" {
		return nil, errors.New("missing client id")
	}

	if field == "status" {
		s, ok := value.(string)
		if !ok || !domain.ClientStatus(s).Valid() {
			return nil, fmt.Errorf("invalid status %v", value)
		}
	}

	return uc.rentals.UpdateClientField(ctx, id, field, value)
}
