package app

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"zuccess/go_backend/internal/app/config"
	apphttp "zuccess/go_backend/internal/app/http"
	"zuccess/go_backend/internal/app/logger"
	"zuccess/go_backend/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()

	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.InitSchema(ctx, db); err != nil {
		log.Fatal("db schema", zap.Error(err))
	}

	router := apphttp.NewRouter(cfg, db, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("http server", zap.Error(err))
	}
}
