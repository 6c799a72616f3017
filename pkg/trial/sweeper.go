package trial

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper drives the daily trial sweep. It is a singleton scheduled job:
// the sweep only exists to emit notifications and run expiry handlers.
// Running it concurrently with ordinary reads is safe because readers
// always recompute trial activity from timestamps.
type Sweeper struct {
	service  *Service
	interval time.Duration
	logger   *slog.Logger
}

// SweeperOption configures a Sweeper.
type SweeperOption func(*Sweeper)

// WithSweepInterval overrides the default 24h interval. Intended for tests.
func WithSweepInterval(d time.Duration) SweeperOption {
	return func(s *Sweeper) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithSweeperLogger sets the logger for sweep progress.
func WithSweeperLogger(logger *slog.Logger) SweeperOption {
	return func(s *Sweeper) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSweeper creates a Sweeper for the given service.
func NewSweeper(service *Service, opts ...SweeperOption) *Sweeper {
	if service == nil {
		panic("trial: Service is required")
	}

	s := &Sweeper{
		service:  service,
		interval: 24 * time.Hour,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start runs one sweep immediately, then repeats on the configured interval
// until the context is cancelled. Blocks; run it in its own goroutine.
func (s *Sweeper) Start(ctx context.Context) error {
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "trial sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	if err := s.service.NotifyExpiring(ctx); err != nil {
		s.logger.ErrorContext(ctx, "trial sweeper: warning pass failed", slog.Any("error", err))
	}
	if err := s.service.ReconcileExpired(ctx); err != nil {
		s.logger.ErrorContext(ctx, "trial sweeper: expiry pass failed", slog.Any("error", err))
	}
}
