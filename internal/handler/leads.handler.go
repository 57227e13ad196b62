package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/repository"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := repository.LeadFilter{
		DealerID: r.URL.Query().Get("dealer_id"),
		Status:   r.URL.Query().Get("status"),
	}

	leads, err := h.uc.List(ctx, filter)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch leads: "+err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
		"count": len(leads),
	})
}

func (h *LeadHandler) UpdateLeadField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	leadID := chi.URLParam(r, "id")

	var body fieldUpdateBody
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.uc.UpdateField(ctx, leadID, body.Field, body.Value)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	leadID := chi.URLParam(r, "id")

	if err := h.uc.Remove(ctx, leadID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "lead deleted",
	})
}
