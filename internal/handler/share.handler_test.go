package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/broadcast"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/events"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/selection"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/usecase"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/auth"
)

const testSecret = "test-secret"

type fakeShareStore struct {
	entries []*domain.ShareHistoryEntry
	nextID  int
}

func (f *fakeShareStore) InsertShare(ctx context.Context, req *domain.ShareRequest) (*domain.ShareHistoryEntry, error) {
	f.nextID++
	entry := &domain.ShareHistoryEntry{
		ID:          fmt.Sprintf("SHR%04d", f.nextID),
		DealerID:    req.DealerID,
		EntityType:  req.EntityType,
		RecordIDs:   req.RecordIDs,
		Channels:    req.Channels,
		TrustLevels: req.TrustLevels,
		Contacts:    req.Contacts,
		Message:     req.Message,
		CreatedAt:   time.Now(),
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeShareStore) ListByDealer(ctx context.Context, dealerID string) ([]*domain.ShareHistoryEntry, error) {
	var out []*domain.ShareHistoryEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].DealerID == dealerID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fakePartnerDirectory struct {
	partners []*domain.Partner
}

func (f *fakePartnerDirectory) GetActivePartners(ctx context.Context) ([]*domain.Partner, error) {
	return f.partners, nil
}

func (f *fakePartnerDirectory) GetPartnersByIDs(ctx context.Context, partnerIDs []string) ([]*domain.Partner, error) {
	byID := make(map[string]*domain.Partner)
	for _, p := range f.partners {
		byID[p.ID] = p
	}
	var out []*domain.Partner
	for _, partnerID := range partnerIDs {
		if p, ok := byID[partnerID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T) (*chi.Mux, *fakeShareStore) {
	t.Helper()

	store := &fakeShareStore{}
	email := "sales@alpine.ch"
	directory := &fakePartnerDirectory{
		partners: []*domain.Partner{
			{ID: "PTN1", Name: "Alpine Motors", Status: domain.PartnerStatusActive, ContactEmail: &email},
		},
	}

	uc := usecase.NewShareUsecase(store, directory, usecase.ShareOptions{
		DefaultMessage: "shared via PremiumCarsEU",
	})

	logger := zap.NewNop()
	// Redis is unreachable in unit tests; every publish is best-effort and
	// must not affect the response.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})

	h := NewShareHandler(
		uc,
		events.NewEventPublisher(rdb, logger),
		nil,
		broadcast.NewWebhookNotifier(logger),
		selection.NewRedisStore(rdb),
		logger,
	)

	r := chi.NewRouter()
	r.Use(auth.Session(testSecret, logger))
	r.Post("/share/offers", h.ShareOffers)
	r.Post("/share/leads", h.ShareLeads)
	r.Get("/share/history", h.GetShareHistory)
	return r, store
}

func signedToken(t *testing.T, dealerID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"dealer_id": dealerID})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func postJSON(t *testing.T, r http.Handler, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestShareOffers_Success(t *testing.T) {
	r, store := newTestRouter(t)

	rec := postJSON(t, r, "/share/offers", signedToken(t, "dealer1"), map[string]interface{}{
		"offer_ids":                []string{"id1", "id2"},
		"channels":                 []string{"WhatsApp", "Email"},
		"shared_with_trust_levels": []string{"trusted"},
		"shared_with_contacts":     []string{"+41001", "  "},
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			SharedCount int                      `json:"shared_count"`
			Share       domain.ShareHistoryEntry `json:"share"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Data.SharedCount)
	assert.Equal(t, "dealer1", resp.Data.Share.DealerID)
	assert.Equal(t, []string{"+41001"}, resp.Data.Share.Contacts)
	assert.Equal(t, []domain.Channel{"WhatsApp", "Email"}, resp.Data.Share.Channels)
	assert.Equal(t, []domain.TrustLevel{"trusted"}, resp.Data.Share.TrustLevels)
	require.Len(t, store.entries, 1)
}

func TestShareOffers_NoRecordsSelected(t *testing.T) {
	r, store := newTestRouter(t)

	rec := postJSON(t, r, "/share/offers", "", map[string]interface{}{
		"offer_ids": []string{},
		"channels":  []string{"Email"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no records selected")
	assert.Empty(t, store.entries)
}

func TestShareOffers_NoShareTargetSelected(t *testing.T) {
	r, store := newTestRouter(t)

	rec := postJSON(t, r, "/share/offers", "", map[string]interface{}{
		"offer_ids": []string{"id1"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one channel")
	assert.Empty(t, store.entries)
}

func TestShareLeads_PartnerRecipients(t *testing.T) {
	r, store := newTestRouter(t)

	rec := postJSON(t, r, "/share/leads", signedToken(t, "dealer1"), map[string]interface{}{
		"lead_ids":                []string{"l1"},
		"shared_with_partner_ids": []string{"PTN1", "PTN_UNKNOWN"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.entries, 1)
	assert.Equal(t, []string{"sales@alpine.ch"}, store.entries[0].Contacts)
	assert.Equal(t, domain.ShareEntityLeads, store.entries[0].EntityType)
}

func TestShareOffers_UnauthenticatedStillSubmits(t *testing.T) {
	r, store := newTestRouter(t)

	rec := postJSON(t, r, "/share/offers", "", map[string]interface{}{
		"offer_ids": []string{"id1"},
		"channels":  []string{"Email"},
	})

	// Identity enforcement is upstream; the dealer ID is simply empty.
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.entries, 1)
	assert.Empty(t, store.entries[0].DealerID)
}

func TestShareOffers_BodyDealerIDFallback(t *testing.T) {
	r, store := newTestRouter(t)

	rec := postJSON(t, r, "/share/offers", "", map[string]interface{}{
		"offer_ids": []string{"id1"},
		"dealer_id": "dealer9",
		"channels":  []string{"Email"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.entries, 1)
	assert.Equal(t, "dealer9", store.entries[0].DealerID)
}

func TestShareOffers_SessionOverridesBodyDealerID(t *testing.T) {
	r, store := newTestRouter(t)

	rec := postJSON(t, r, "/share/offers", signedToken(t, "dealer1"), map[string]interface{}{
		"offer_ids": []string{"id1"},
		"dealer_id": "dealer9",
		"channels":  []string{"Email"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.entries, 1)
	assert.Equal(t, "dealer1", store.entries[0].DealerID)
}

func TestGetShareHistory_Unauthenticated(t *testing.T) {
	r, store := newTestRouter(t)
	store.entries = append(store.entries, &domain.ShareHistoryEntry{ID: "SHR1", DealerID: "dealer1"})

	req := httptest.NewRequest(http.MethodGet, "/share/history", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			History []domain.ShareHistoryEntry `json:"history"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.History)
}

func TestGetShareHistory_ScopedToDealer(t *testing.T) {
	r, store := newTestRouter(t)
	store.entries = append(store.entries,
		&domain.ShareHistoryEntry{ID: "SHR1", DealerID: "dealer1"},
		&domain.ShareHistoryEntry{ID: "SHR2", DealerID: "dealer2"},
		&domain.ShareHistoryEntry{ID: "SHR3", DealerID: "dealer1"},
	)

	req := httptest.NewRequest(http.MethodGet, "/share/history", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "dealer1"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			History []domain.ShareHistoryEntry `json:"history"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.History, 2)
	assert.Equal(t, "SHR3", resp.Data.History[0].ID)
	assert.Equal(t, "SHR1", resp.Data.History[1].ID)
}

func TestShareOffers_DoubleClickCreatesTwoEntries(t *testing.T) {
	r, store := newTestRouter(t)

	body := map[string]interface{}{
		"offer_ids": []string{"id1"},
		"channels":  []string{"Email"},
	}
	rec1 := postJSON(t, r, "/share/offers", "", body)
	rec2 := postJSON(t, r, "/share/offers", "", body)

	require.Equal(t, http.StatusCreated, rec1.Code)
	require.Equal(t, http.StatusCreated, rec2.Code)
	assert.Len(t, store.entries, 2)
}
