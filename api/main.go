package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/grillaway/internal/config"
	api "github.com/rogerio-castellano/grillaway/internal/http"
	rl "github.com/rogerio-castellano/grillaway/internal/http/rate_limiter"
	"github.com/rogerio-castellano/grillaway/internal/metrics"
	"github.com/rogerio-castellano/grillaway/internal/shop"
	"github.com/rogerio-castellano/grillaway/internal/storage"
	"github.com/rogerio-castellano/grillaway/pkg/logger"
)

// @title Grillaway Storefront API
// @version 1.0
// @description Catalog, cart, checkout and order tracking for the Grillaway grill kit shop.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	log.Info("starting grillaway storefront",
		"addr", cfg.Server.Addr,
		"storage", cfg.Storage.Driver,
		"log_level", cfg.Log.Level,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Error("could not open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	s, err := shop.New(ctx, storage.NewAdapter(store, cfg.Storage.Prefix), shop.Options{
		Logger: log,
		Shipping: shop.ShippingPolicy{
			InternalCost:     cfg.Shipping.InternalCost,
			ExternalCost:     cfg.Shipping.ExternalCost,
			PriceExternal:    cfg.Shipping.PriceExternal,
			ExternalEstimate: cfg.Shipping.ExternalEstimate,
		},
	})
	if err != nil {
		log.Error("could not load shop state", "error", err)
		os.Exit(1)
	}

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx, time.Minute)

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: api.NewRouter(api.Deps{
			Shop:           s,
			Recorder:       metrics.NewRecorder(),
			Limiter:        limiter,
			Logger:         log,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error("server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}
	log.Info("server stopped gracefully")
}
