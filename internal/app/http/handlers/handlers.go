package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"zuccess/go_backend/internal/app/config"
	"zuccess/go_backend/internal/domain/quotation"
	"zuccess/go_backend/internal/domain/quotation/pdf"
	pdfgen "zuccess/go_backend/internal/domain/quotation/pdf/gofpdf"
	"zuccess/go_backend/internal/infra/db/postgres"
)

// StockStore supplies catalog items to the pricing strategies.
type StockStore interface {
	List(ctx context.Context, category string) ([]quotation.StockItem, error)
}

// QuotationStore persists computed quotations. SaveWithDecrements must apply
// the stock decrements and append the record in one transaction.
type QuotationStore interface {
	Append(ctx context.Context, rec quotation.Record) error
	SaveWithDecrements(ctx context.Context, rec quotation.Record, decs []quotation.StockDecrement) error
	NextNumber(ctx context.Context) (int64, error)
}

type UserStore interface {
	Authenticate(ctx context.Context, username, password string) (int64, error)
}

type Handlers struct {
	Stock      StockStore
	Quotations QuotationStore
	Users      UserStore
	Gen        pdf.Generator
	Cfg        config.Config
	Log        *zap.Logger

	// Letterhead assets loaded once at startup; nil when unconfigured.
	Logo      []byte
	Signature []byte
}

func New(db *postgres.DB, cfg config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		Stock:      postgres.NewStockStore(db),
		Quotations: postgres.NewQuotationStore(db),
		Users:      postgres.NewUserStore(db),
		Gen:        pdfgen.New(),
		Cfg:        cfg,
		Log:        log,
		Logo:       readAsset(cfg.LogoPath, log),
		Signature:  readAsset(cfg.SignaturePath, log),
	}
}

func readAsset(path string, log *zap.Logger) []byte {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn("asset not loaded", zap.String("path", path), zap.Error(err))
		return nil
	}
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "message": msg})
}
