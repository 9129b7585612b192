package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"salesboard/internal/backend"
	"salesboard/internal/config"
	"salesboard/internal/core"
	apphttp "salesboard/internal/http"
	applog "salesboard/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Choose the record source backend.
	factory := backend.NewFactory(slog.Default())
	store, err := factory.Create(ctx, backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize record source", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if store.Cleanup != nil {
		defer store.Cleanup()
	}

	// One-time date migration: rewrite legacy text dates in place before
	// the load. Safe to run on every start.
	if store.Rewriter != nil {
		n, err := store.Rewriter.RewriteTextDates(ctx)
		if err != nil {
			logger.Error("Date migration failed", applog.FieldError, err)
			os.Exit(1)
		}
		if n > 0 {
			logger.Info("Migrated text dates to structured form", applog.FieldRows, n)
		}
	}

	// One-shot batch load. An unreachable store is fatal: serving a
	// dashboard over partial data silently is worse than not starting.
	raw, err := store.Source.FetchOrders(ctx)
	if err != nil {
		logger.Error("Failed to load orders from record store", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	orders := core.Normalize(raw)
	logger.Info("Orders loaded", applog.FieldRows, len(orders), applog.FieldBackend, cfg.DataBackend)

	report, err := core.BuildReport(ctx, orders, core.ReportOptions{
		TopN:               cfg.TopN,
		HighValueThreshold: cfg.HighValueThreshold,
	})
	if err != nil {
		logger.Error("Failed to build report", applog.FieldError, err)
		os.Exit(1)
	}

	srv := apphttp.NewServer(":"+cfg.Port, report, logger.WithComponent(applog.ComponentHTTP))
	srv.ReadTimeout = cfg.ReadTimeout
	srv.WriteTimeout = cfg.WriteTimeout
	srv.IdleTimeout = cfg.IdleTimeout
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting salesboard server", "port", cfg.Port, applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
