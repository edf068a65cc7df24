package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"zuccess/go_backend/internal/app/config"
	"zuccess/go_backend/internal/app/http/handlers"
	"zuccess/go_backend/internal/app/http/middleware"
	"zuccess/go_backend/internal/infra/db/postgres"
)

func NewRouter(cfg config.Config, db *postgres.DB, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	h := handlers.New(db, cfg, log)

	r.Get("/health", h.Health)
	r.Post("/api/login", h.Login)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/stock", h.ListStock)
		r.Post("/quotations/generate", h.GenerateQuotation)
		r.Post("/quotations/pdf", h.QuotationPDF)

		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))
			r.Post("/quotations", h.SaveQuotation)
		})
	})

	return r
}
