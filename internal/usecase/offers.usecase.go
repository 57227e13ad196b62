package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/repository"
)

type OfferStore interface {
	GetAllOffers(ctx context.Context, filter repository.OfferFilter) ([]*domain.CarOffer, error)
	GetOfferByID(ctx context.Context, id string) (*domain.CarOffer, error)
	UpdateOfferField(ctx context.Context, id, field string, value interface{}) (*domain.CarOffer, error)
	DeleteOffer(ctx context.Context, id string) error
}

type OfferUsecase struct {
	offers OfferStore
}

func NewOfferUsecase(offers OfferStore) *OfferUsecase {
	return &OfferUsecase{offers: offers}
}

func (uc *OfferUsecase) List(ctx context.Context, filter repository.OfferFilter) ([]*domain.CarOffer, error) {
	return uc.offers.GetAllOffers(ctx, filter)
}

func (uc *OfferUsecase) Get(ctx context.Context, id string) (*domain.CarOffer, error) {
	if id == "" {
		return nil, errors.New("missing offer id")
	}
	return uc.offers.GetOfferByID(ctx, id)
}

// UpdateField applies one inline edit. Enum-valued fields are checked against
// their closed set before the write; anything outside is rejected.
func (uc *OfferUsecase) UpdateField(ctx context.Context, id, field string, value interface{}) (*domain.CarOffer, error) {
	if id == "" {
		return nil, errors.New("missing offer id")
	}

	switch field {
	case "approval_status":
		s, ok := value.(string)
		if !ok || !domain.ApprovalStatus(s).Valid() {
			return nil, fmt.Errorf("invalid approval_status %v", value)
		}
	case "listing_type":
		s, ok := value.(string)
		if !ok || !domain.ListingType(s).Valid() {
			return nil, fmt.Errorf("invalid listing_type %v", value)
		}
	}

	return uc.offers.UpdateOfferField(ctx, id, field, value)
}

func (uc *OfferUsecase) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing offer id")
	}
	return uc.offers.DeleteOffer(ctx, id)
}
