package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/repository"
)

type memOfferStore struct {
	updates []string // "<id>.<field>" per accepted write
}

func (m *memOfferStore) GetAllOffers(ctx context.Context, filter repository.OfferFilter) ([]*domain.CarOffer, error) {
	return nil, nil
}

func (m *memOfferStore) GetOfferByID(ctx context.Context, id string) (*domain.CarOffer, error) {
	return nil, domain.ErrNotFound
}

func (m *memOfferStore) UpdateOfferField(ctx context.Context, id, field string, value interface{}) (*domain.CarOffer, error) {
	m.updates = append(m.updates, id+"."+field)
	return &domain.CarOffer{ID: id}, nil
}

func (m *memOfferStore) DeleteOffer(ctx context.Context, id string) error { return nil }

type memLeadStore struct {
	updates []string
}

func (m *memLeadStore) GetAllLeads(ctx context.Context, filter repository.LeadFilter) ([]*domain.Lead, error) {
	return nil, nil
}

func (m *memLeadStore) UpdateLeadField(ctx context.Context, id, field string, value interface{}) (*domain.Lead, error) {
	m.updates = append(m.updates, id+"."+field)
	return &domain.Lead{ID: id}, nil
}

func (m *memLeadStore) DeleteLead(ctx context.Context, id string) error { return nil }

func TestOfferUpdateField_RejectsUnknownApprovalStatus(t *testing.T) {
	store := &memOfferStore{}
	uc := NewOfferUsecase(store)

	_, err := uc.UpdateField(context.Background(), "o1", "approval_status", "maybe")
	require.Error(t, err)
	assert.Empty(t, store.updates, "invalid enum value must not reach the store")
}

func TestOfferUpdateField_AcceptsValidEnum(t *testing.T) {
	store := &memOfferStore{}
	uc := NewOfferUsecase(store)

	_, err := uc.UpdateField(context.Background(), "o1", "approval_status", "approved")
	require.NoError(t, err)
	assert.Equal(t, []string{"o1.approval_status"}, store.updates)
}

func TestOfferUpdateField_NonEnumFieldPassesThrough(t *testing.T) {
	store := &memOfferStore{}
	uc := NewOfferUsecase(store)

	_, err := uc.UpdateField(context.Background(), "o1", "price", 42000)
	require.NoError(t, err)
	assert.Equal(t, []string{"o1.price"}, store.updates)
}

func TestOfferUpdateField_MissingID(t *testing.T) {
	uc := NewOfferUsecase(&memOfferStore{})

	_, err := uc.UpdateField(context.Background(), "", "price", 1)
	require.Error(t, err)
}

func TestLeadUpdateField_ContactedMustBeBool(t *testing.T) {
	store := &memLeadStore{}
	uc := NewLeadUsecase(store)

	_, err := uc.UpdateField(context.Background(), "l1", "contacted", "yes")
	require.Error(t, err)
	assert.Empty(t, store.updates)

	_, err = uc.UpdateField(context.Background(), "l1", "contacted", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"l1.contacted"}, store.updates)
}

func TestLeadUpdateField_RejectsUnknownStatus(t *testing.T) {
	store := &memLeadStore{}
	uc := NewLeadUsecase(store)

	_, err := uc.UpdateField(context.Background(), "l1", "status", "lukewarm")
	require.Error(t, err)
	assert.Empty(t, store.updates)
}
