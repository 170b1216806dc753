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

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/carnival/internal/auth"
	"github.com/mmynk/carnival/internal/config"
	"github.com/mmynk/carnival/internal/ledger"
	"github.com/mmynk/carnival/internal/metrics"
	"github.com/mmynk/carnival/internal/storage/sqlite"
	"github.com/mmynk/carnival/pkg/logging"
)

// recorderTokenTTL only matters for Generate; Validate checks the expiry
// carried by the token itself.
const recorderTokenTTL = 30 * 24 * time.Hour

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager, err = auth.NewJWTManager(cfg.JWTSecret, recorderTokenTTL)
		if err != nil {
			return err
		}
		slog.Info("Recorder attribution enabled")
	}

	m := metrics.New()
	l := ledger.New(store,
		ledger.WithMetrics(m),
		ledger.WithPolicy(policy),
		ledger.WithDriftThreshold(cfg.DriftWarnThreshold),
	)

	router := newRouter(l, m, jwtManager, routerConfig{
		CORSOrigin:         cfg.CORSOrigin,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	// h2c serves HTTP/2 without TLS, which Connect clients can use.
	httpServer := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.AppAddr, "policy", string(policy))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
