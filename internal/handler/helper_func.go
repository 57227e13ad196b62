package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/domain"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// parsePagination reads limit/offset query params with sane defaults.
func parsePagination(r *http.Request, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			limit = l
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if o, err := strconv.Atoi(v); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}

// writeUsecaseError maps usecase errors onto the API error envelope:
// validation failures are 400s, missing records are 404s, everything else
// surfaces as a 500 with the message passed through verbatim.
func writeUsecaseError(w http.ResponseWriter, err error) {
	if verr, ok := domain.AsValidationError(err); ok {
		response.Error(w, http.StatusBadRequest, verr.Message)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(w, http.StatusNotFound, err.Error())
		return
	}
	response.Error(w, http.StatusInternalServerError, err.Error())
}
