package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_techstore/internal/config"
	"github.com/fjod/go_techstore/internal/recordhttp"
	"github.com/fjod/go_techstore/internal/recordstore"
	"github.com/fjod/go_techstore/internal/telemetry"
)

func main() {
	telemetry.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.SetupTracer(ctx, "record-service")
		if err != nil {
			slog.Error("failed to set up tracing", "error", err)
			os.Exit(1)
		}
		defer shutdown(context.Background())
	}

	store := recordstore.NewMemoryStore()
	handler := recordhttp.NewHandler(store)
	router := recordhttp.NewRouter(handler)

	srv := &http.Server{
		Addr:         cfg.RecordService.Addr,
		Handler:      otelhttp.NewHandler(router, "record-service"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("record service starting", "addr", cfg.RecordService.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}
