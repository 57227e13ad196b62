package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
)

type PartnerStore interface {
	PartnerDirectory
	GetAllPartners(ctx context.Context) ([]*domain.Partner, error)
	GetPartnerByID(ctx context.Context, id string) (*domain.Partner, error)
	UpdatePartnerField(ctx context.Context, id, field string, value interface{}) (*domain.Partner, error)
	DeletePartner(ctx context.Context, id string) error
}

type PartnerUsecase struct {
	partners PartnerStore
}

func NewPartnerUsecase(partners PartnerStore) *PartnerUsecase {
	return &PartnerUsecase{partners: partners}
}

// List returns the full partner network for the management screen.
func (uc *PartnerUsecase) List(ctx context.Context) ([]*domain.Partner, error) {
	return uc.partners.GetAllPartners(ctx)
}

// Directory returns active partners only, ordered by name: the set selectable
// as share recipients.
func (uc *PartnerUsecase) Directory(ctx context.Context) ([]*domain.Partner, error) {
	return uc.partners.GetActivePartners(ctx)
}

func (uc *PartnerUsecase) Get(ctx context.Context, id string) (*domain.Partner, error) {
	if id == "" {
		return nil, errors.New("missing partner id")
	}
	return uc.partners.GetPartnerByID(ctx, id)
}

func (uc *PartnerUsecase) UpdateField(ctx context.Context, id, field string, value interface{}) (*domain.Partner, error) {
	if id == "" {
		return nil, errors.New("missing partner id")
	}

	switch field {
	case "status":
		s, ok := value.(string)
		if !ok || !domain.PartnerStatus(s).Valid() {
			return nil, fmt.Errorf("invalid status %v", value)
		}
	case "trust_level":
		s, ok := value.(string)
		if !ok || !domain.TrustLevel(s).Valid() {
			return nil, fmt.Errorf("invalid trust_level %v", value)
		}
	}

	return uc.partners.UpdatePartnerField(ctx, id, field, value)
}

func (uc *PartnerUsecase) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing partner id")
	}
	return uc.partners.DeletePartner(ctx, id)
}
