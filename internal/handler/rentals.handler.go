package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

func (h *RentalHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := parsePagination(r, 20)

	reservations, total, err := h.uc.ListReservations(ctx, limit, offset)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch reservations: "+err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"reservations": reservations,
		"total_count":  total,
		"limit":        limit,
		"offset":       offset,
	})
}

func (h *RentalHandler) UpdateReservationField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reservationID := chi.URLParam(r, "id")

	var body fieldUpdateBody
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := h.uc.UpdateReservationField(ctx, reservationID, body.Field, body.Value)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, reservation)
}

func (h *RentalHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reservationID := chi.URLParam(r, "id")

	if err := h.uc.RemoveReservation(ctx, reservationID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "reservation deleted",
	})
}

func (h *RentalHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := parsePagination(r, 20)

	clients, total, err := h.uc.ListClients(ctx, limit, offset)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch clients: "+err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"clients":     clients,
		"total_count": total,
		"limit":       limit,
		"offset":      offset,
	})
}

func (h *RentalHandler) UpdateClientField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := chi.URLParam(r, "id")

	var body fieldUpdateBody
	if err := decodeJSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.uc.UpdateClientField(ctx, clientID, body.Field, body.Value)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, client)
}
