package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"zuccess/go_backend/internal/domain/quotation"
)

// quotationRequest is the mode-tagged body shared by the generate, save, and
// pdf endpoints. Only the fields of the tagged mode are consulted.
type quotationRequest struct {
	Type   string `json:"type"`
	UserID int64  `json:"user_id"`

	Items []struct {
		ID  int64   `json:"id"`
		Qty float64 `json:"qty"`
	} `json:"items"`

	Services []struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		UnitPrice   float64 `json:"unit_price"`
		Qty         float64 `json:"qty"`
	} `json:"services"`

	Rooms quotation.RoomCounts `json:"rooms"`

	IncludeInstallation bool `json:"include_installation"`
}

// buildInput resolves the raw request into calculator input, fetching stock
// where the mode needs it. Unknown catalog ids are skipped, not rejected.
func (h *Handlers) buildInput(ctx context.Context, req quotationRequest) (quotation.Input, error) {
	in := quotation.Input{Mode: quotation.Mode(req.Type)}

	switch in.Mode {
	case quotation.ModeCatalog:
		stock, err := h.Stock.List(ctx, "")
		if err != nil {
			return in, fmt.Errorf("load stock: %w", err)
		}
		byID := make(map[int64]quotation.StockItem, len(stock))
		for _, it := range stock {
			byID[it.ID] = it
		}
		for _, item := range req.Items {
			it, ok := byID[item.ID]
			if !ok {
				continue
			}
			in.Catalog = append(in.Catalog, quotation.CatalogSelection{
				Item:         it,
				RequestedQty: item.Qty,
			})
		}

	case quotation.ModeServices:
		for _, s := range req.Services {
			in.Services = append(in.Services, quotation.ServiceEntry{
				Name:        s.Name,
				Description: s.Description,
				UnitPrice:   s.UnitPrice,
				Qty:         s.Qty,
			})
		}

	case quotation.ModeRooms:
		stock, err := h.Stock.List(ctx, "")
		if err != nil {
			return in, fmt.Errorf("load stock: %w", err)
		}
		in.Rooms = req.Rooms
		in.Stock = stock
	}

	return in, nil
}

func (h *Handlers) compute(ctx context.Context, req quotationRequest) (quotation.Quotation, error) {
	in, err := h.buildInput(ctx, req)
	if err != nil {
		return quotation.Quotation{}, err
	}
	return quotation.Compute(in, quotation.Options{IncludeInstallation: req.IncludeInstallation})
}

// GenerateQuotation computes and returns a quotation without persisting it.
func (h *Handlers) GenerateQuotation(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	q, err := h.compute(r.Context(), req)
	if err != nil {
		h.Log.Error("generate quotation", zap.String("type", req.Type), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, q)
}
