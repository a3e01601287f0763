package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jroosing/zooapi/internal/config"
	"github.com/jroosing/zooapi/internal/store"
)

// Runner orchestrates store startup, the HTTP server and shutdown.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a new runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run serves until SIGINT or SIGTERM.
//
// Lifecycle:
//  1. Open the configured animal store (loads the persisted records)
//  2. Build the HTTP server over it
//  3. Serve until a shutdown signal
//  4. Drain in-flight requests within the shutdown timeout
//  5. Close the store
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext is Run with the shutdown signal supplied by the caller.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	st, err := store.Open(store.Config{Backend: cfg.Storage.Backend, Path: cfg.Storage.Path}, r.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			r.logger.Error("failed to close store", "err", err)
		}
	}()

	srv := New(cfg, st, r.logger)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}
