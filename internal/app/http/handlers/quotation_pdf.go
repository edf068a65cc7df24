package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"zuccess/go_backend/internal/domain/quotation"
	"zuccess/go_backend/internal/domain/quotation/pdf"
)

type quotationPDFRequest struct {
	quotationRequest

	QuoteNumber string `json:"quote_number"`
	BillTo      string `json:"bill_to"`
	Subject     string `json:"subject"`
	QuoteDate   string `json:"quote_date"`
	Notes       string `json:"notes"`
	SignerName  string `json:"signer_name"`
	SignerTitle string `json:"signer_title"`
}

// QuotationPDF computes a quotation and streams it as a rendered document.
// Rendering never depends on persistence; a quotation that failed to save can
// still be downloaded.
func (h *Handlers) QuotationPDF(w http.ResponseWriter, r *http.Request) {
	var req quotationPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	q, err := h.compute(r.Context(), req.quotationRequest)
	if err != nil {
		h.Log.Error("quotation pdf: compute", zap.String("type", req.Type), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	meta := pdf.Meta{
		QuoteNumber: req.QuoteNumber,
		BillTo:      req.BillTo,
		Subject:     req.Subject,
		QuoteDate:   parseQuoteDate(req.QuoteDate),
		Notes:       req.Notes,
		Currency:    h.Cfg.CurrencyLabel,
		Signer: quotation.Signer{
			Name:  firstNonEmpty(req.SignerName, h.Cfg.SignerName),
			Title: firstNonEmpty(req.SignerTitle, h.Cfg.SignerTitle),
		},
		Logo:      h.Logo,
		Signature: h.Signature,
	}
	if meta.QuoteNumber == "" {
		meta.QuoteNumber = h.nextQuoteNumber(r)
	}

	out, err := h.Gen.Generate(q, meta)
	if err != nil {
		h.Log.Error("quotation pdf: render", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(meta.QuoteNumber)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// nextQuoteNumber allocates an opaque QT-nnnnnn number. A sequence failure
// must not block rendering, so it falls back to a clock-derived number.
func (h *Handlers) nextQuoteNumber(r *http.Request) string {
	n, err := h.Quotations.NextNumber(r.Context())
	if err != nil {
		h.Log.Warn("quote number sequence", zap.Error(err))
		n = time.Now().Unix() % 1000000
	}
	return fmt.Sprintf("QT-%06d", n)
}

func parseQuoteDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
