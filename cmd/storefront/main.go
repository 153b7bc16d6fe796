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

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_techstore/internal/catalog"
	"github.com/fjod/go_techstore/internal/config"
	"github.com/fjod/go_techstore/internal/recordclient"
	"github.com/fjod/go_techstore/internal/rest"
	"github.com/fjod/go_techstore/internal/session"
	"github.com/fjod/go_techstore/internal/storage"
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
		shutdown, err := telemetry.SetupTracer(ctx, "storefront")
		if err != nil {
			slog.Error("failed to set up tracing", "error", err)
			os.Exit(1)
		}
		defer shutdown(context.Background())
	}

	store, err := buildStore(cfg)
	if err != nil {
		slog.Error("failed to set up storage", "error", err)
		os.Exit(1)
	}

	var publisher rest.RecordPublisher
	if cfg.Publish.Enabled {
		publisher = recordclient.New(cfg.Publish.Addr, cfg.Publish.Timeout)
		slog.Info("record publishing enabled", "addr", cfg.Publish.Addr)
	}

	sess := session.New(ctx, catalog.Default(), store)
	router := rest.NewRouter(sess, publisher, cfg.Storefront.RequestTimeout)

	srv := &http.Server{
		Addr:         cfg.Storefront.Addr,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("storefront starting", "addr", cfg.Storefront.Addr, "backend", cfg.Storefront.Backend)
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

// buildStore wires the configured persistence backend behind the
// read-through cache.
func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storefront.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Storefront.RedisAddr})
		return storage.NewCachedStore(storage.NewRedisStore(client)), nil
	default:
		fs, err := storage.NewFileStore(cfg.Storefront.StateDir)
		if err != nil {
			return nil, err
		}
		return storage.NewCachedStore(fs), nil
	}
}
