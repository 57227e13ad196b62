package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/repository"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := repository.OfferFilter{
		DealerID:       r.URL.Query().Get("dealer_id"),
		ApprovalStatus: r.URL.Query().Get("approval_status"),
		ListingType:    r.URL.Query().Get("listing_type"),
	}

	offers, err := h.uc.List(ctx, filter)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch offers: "+err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"offers": offers,
		"count":  len(offers),
	})
}

// GetOffer serves the detail modal for one offer.
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offer, err := h.uc.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, offer)
}

// fieldUpdateBody is the inline-edit payload: one field, one value, one
// round-trip per cell edit.
type fieldUpdateBody struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

func (h *OfferHandler) UpdateOfferField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	offerID := chi.URLParam(r, "id")

	var body fieldUpdateBody
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	offer, err := h.uc.UpdateField(ctx, offerID, body.Field, body.Value)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	offerID := chi.URLParam(r, "id")

	if err := h.uc.Remove(ctx, offerID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "offer deleted",
	})
}
