package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"zuccess/go_backend/internal/domain/quotation"
)

func (h *Handlers) ListStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.Stock.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.Log.Error("list stock", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load stock")
		return
	}
	if items == nil {
		items = []quotation.StockItem{}
	}
	writeJSON(w, http.StatusOK, items)
}
