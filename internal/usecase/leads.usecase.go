package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/repository"
)

type LeadStore interface {
	GetAllLeads(ctx context.Context, filter repository.LeadFilter) ([]*domain.Lead, error)
	UpdateLeadField(ctx context.Context, id, field string, value interface{}) (*domain.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

type LeadUsecase struct {
	leads LeadStore
}

func NewLeadUsecase(leads LeadStore) *LeadUsecase {
	return &LeadUsecase{leads: leads}
}

func (uc *LeadUsecase) List(ctx context.Context, filter repository.LeadFilter) ([]*domain.Lead, error) {
	return uc.leads.GetAllLeads(ctx, filter)
}

func (uc *LeadUsecase) UpdateField(ctx context.Context, id, field string, value interface{}) (*domain.Lead, error) {
	if id == "" {
		return nil, errors.New("missing lead id")
	}

	switch field {
	case "status":
		s, ok := value.(string)
		if !ok || !domain.LeadStatus(s).Valid() {
			return nil, fmt.Errorf("invalid status %v", value)
		}
	case "contacted":
		if _, ok := value.(bool); !ok {
			return nil, fmt.Errorf("contacted must be a boolean, got %v", value)
		}
	}

	return uc.leads.UpdateLeadField(ctx, id, field, value)
}

func (uc *LeadUsecase) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing lead id")
	}
	return uc.leads.DeleteLead(ctx, id)
}
