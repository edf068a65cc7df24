package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"zuccess/go_backend/internal/domain/quotation"
)

// SaveQuotation computes a quotation and appends it to the log. Catalog
// quotations also decrement the stock of every priced line, atomically with
// the append. A failed save leaves the computed quotation usable; the client
// may still render it.
func (h *Handlers) SaveQuotation(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	q, err := h.compute(r.Context(), req)
	if err != nil {
		h.Log.Error("save quotation: compute", zap.String("type", req.Type), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := quotation.Record{
		UserID: req.UserID,
		Kind:   quotation.Mode(req.Type),
		Data:   q,
		Total:  q.Total,
	}

	if rec.Kind == quotation.ModeCatalog {
		err = h.Quotations.SaveWithDecrements(r.Context(), rec, decrements(q))
	} else {
		err = h.Quotations.Append(r.Context(), rec)
	}
	if err != nil {
		h.Log.Error("save quotation: persist", zap.String("type", req.Type), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save quotation")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "quotation": q})
}

// decrements lists the stock mutations for a saved catalog quotation: one per
// catalog-backed line, with the effective (clamped) quantity. Synthetic lines
// carry no catalog id and are skipped.
func decrements(q quotation.Quotation) []quotation.StockDecrement {
	var decs []quotation.StockDecrement
	for _, line := range q.Lines {
		if line.ID == 0 {
			continue
		}
		decs = append(decs, quotation.StockDecrement{ItemID: line.ID, Qty: int(line.Qty)})
	}
	return decs
}
