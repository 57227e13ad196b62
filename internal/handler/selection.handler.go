package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/pkg/auth"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

// GetSelection returns the dealer's current selection for one entity list.
func (h *SelectionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dealerID := auth.DealerID(ctx)
	if dealerID == "" {
		response.Error(w, http.StatusUnauthorized, "missing session")
		return
	}
	entity := chi.URLParam(r, "entity")

	set, err := h.store.Load(ctx, dealerID, entity)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"ids":          set.IDs(),
		"all_selected": set.AllSelected(),
	})
}

// ToggleAll replaces the selection with the currently visible IDs (checked)
// or empties it (unchecked).
func (h *SelectionHandler) ToggleAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dealerID := auth.DealerID(ctx)
	if dealerID == "" {
		response.Error(w, http.StatusUnauthorized, "missing session")
		return
	}
	entity := chi.URLParam(r, "entity")

	var body struct {
		VisibleIDs []string `json:"visible_ids"`
		Checked    bool     `json:"checked"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	set, err := h.store.Load(ctx, dealerID, entity)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	set.ToggleAll(body.VisibleIDs, body.Checked)

	if err := h.store.Save(ctx, dealerID, entity, set); err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"ids":          set.IDs(),
		"all_selected": set.AllSelected(),
	})
}

// ToggleOne adds or removes a single record from the selection.
func (h *SelectionHandler) ToggleOne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dealerID := auth.DealerID(ctx)
	if dealerID == "" {
		response.Error(w, http.StatusUnauthorized, "missing session")
		return
	}
	entity := chi.URLParam(r, "entity")

	var body struct {
		ID      string `json:"id"`
		Checked bool   `json:"checked"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.ID == "" {
		response.Error(w, http.StatusBadRequest, "missing record id")
		return
	}

	set, err := h.store.Load(ctx, dealerID, entity)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	set.ToggleOne(body.ID, body.Checked)

	if err := h.store.Save(ctx, dealerID, entity, set); err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"ids":          set.IDs(),
		"all_selected": set.AllSelected(),
	})
}
