package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

// ListPartners returns the full partner network for the management screen.
func (h *PartnerHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partners, err := h.uc.List(ctx)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch partners: "+err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"partners": partners,
		"count":    len(partners),
	})
}

// PartnerDirectory returns active partners only, the set offered as share
// recipients. The directory is supplementary data: a fetch failure degrades
// to an empty list rather than an error banner.
func (h *PartnerHandler) PartnerDirectory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partners, err := h.uc.Directory(ctx)
	if err != nil {
		h.logger.Warn("partner directory fetch failed", zap.Error(err))
		partners = nil
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"partners": partners,
	})
}

// GetPartner serves the detail modal for one partner.
func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partner, err := h.uc.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, partner)
}

func (h *PartnerHandler) UpdatePartnerField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	partnerID := chi.URLParam(r, "id")

	var body fieldUpdateBody
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	partner, err := h.uc.UpdateField(ctx, partnerID, body.Field, body.Value)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, partner)
}

func (h *PartnerHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	partnerID := chi.URLParam(r, "id")

	if err := h.uc.Remove(ctx, partnerID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "partner deleted",
	})
}
