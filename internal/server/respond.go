package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/internal/catalog"
	productuc "github.com/storekeep/inventory-service/internal/product/usecase"
	"github.com/storekeep/inventory-service/internal/sales"
	"github.com/storekeep/inventory-service/internal/store"
	supplieruc "github.com/storekeep/inventory-service/internal/supplier/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// respondError maps domain failures onto HTTP statuses: constraint
// violations and stock shortfalls are conflicts, engine failures are server
// errors, anything else is a bad request.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, productuc.ErrItemNotFound), errors.Is(err, supplieruc.ErrSupplierNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case store.IsConstraintViolation(err):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, sales.ErrInsufficientStock):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrQueryFailed):
		h.log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
