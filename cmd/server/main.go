// Package main is the entry point for the shipwaste API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shipwaste/api"
	"shipwaste/core/engine"
	"shipwaste/core/estimate"
	"shipwaste/core/geo"
	"shipwaste/core/rate"
	"shipwaste/internal/config"
	"shipwaste/internal/logging"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load(".env")

	cfgPath := os.Getenv("SHIPWASTE_CONFIG")
	cfg := config.Get()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			logging.Error("load config", zap.Error(err))
			os.Exit(1)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("init logging", zap.Error(err))
	}

	gazPath := os.Getenv("SHIPWASTE_ZIP_DATA")
	if gazPath == "" {
		gazPath = cfg.Geo.GazetteerPath
	}
	gaz, err := geo.LoadGazetteer(gazPath)
	if err != nil {
		logging.Error("load gazetteer", zap.Error(err))
		os.Exit(1)
	}
	logging.Info("gazetteer loaded", zap.Int("postal_codes", gaz.Len()))

	rates := rate.DefaultUSPS()
	classifier := geo.NewClassifier(gaz, cfg.Geo.Boundaries())
	estimator := estimate.New(rates, estimate.Options{
		MarkupFactor:      cfg.Estimation.MarkupFactor,
		PackagingFraction: cfg.Estimation.PackagingFraction,
		CategoryFractions: cfg.Estimation.CategoryFractions,
	})
	eng := engine.New(classifier, estimator, engine.Options{Logger: logging.Logger})

	handler := api.NewServer(eng, version, cfg.Server.MaxBatchSize, logging.Logger)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logging.Info("api listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("shutdown", zap.Error(err))
	}
	logging.Sync()
}
