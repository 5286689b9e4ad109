package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/pinning"
	"inkwell/internal/service"
	"inkwell/internal/utils"

	"github.com/lmittmann/tint"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed connection does not abort startup; the service runs degraded
	// and every store access retries the connection sequence. Index creation
	// happens inside the database layer on the first successful connect.
	db, err := database.NewMongoDB(ctx, cfg.Database.URI, cfg.Database.Name, log)
	if err != nil {
		log.Warn("starting in degraded mode, database unreachable", "err", err)
	}

	pinner := pinning.NewClient(cfg.Pinning.Endpoint, cfg.Pinning.APIKey, cfg.Pinning.APISecret)
	if !pinner.Configured() {
		log.Warn("pinning provider credentials not set, uploads will fail")
	}

	svc := service.New(db)
	server := handlers.NewServer(svc, db, pinner, log)
	metrics := utils.NewMetricsCollector()

	mux := http.NewServeMux()
	server.Routes(mux)

	handler := middleware.CORS(middleware.DefaultCORSConfig(cfg.AllowedOrigins))(
		middleware.RequestLogger(log, metrics)(mux),
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "err", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error("database disconnect failed", "err", err)
	}

	requests, errCount, uptime := metrics.Snapshot()
	log.Info("stopped", "requests", requests, "errors", errCount, "uptime", uptime)
}
