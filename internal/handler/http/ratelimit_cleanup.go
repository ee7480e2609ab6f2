package http

import (
	"context"
	"log/slog"
	"time"

	"textdigest/pkg/config"
)

// DefaultCleanupInterval is the default cleanup interval if not specified.
const DefaultCleanupInterval = 5 * time.Minute

// DefaultIdleTimeout is how long a client may stay silent before its bucket
// is dropped. A dropped client starts again with a full bucket.
const DefaultIdleTimeout = 10 * time.Minute

// CleanupConfig holds configuration for rate limit cleanup.
type CleanupConfig struct {
	// Interval specifies how often to run cleanup.
	Interval time.Duration

	// IdleTimeout is the inactivity after which a client is forgotten.
	IdleTimeout time.Duration
}

// LoadCleanupConfigFromEnv reads RATELIMIT_CLEANUP_INTERVAL and
// RATELIMIT_IDLE_TIMEOUT. Invalid or non-positive values fall back to the
// defaults.
func LoadCleanupConfigFromEnv() CleanupConfig {
	cfg := CleanupConfig{
		Interval:    config.GetEnvDuration("RATELIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval),
		IdleTimeout: config.GetEnvDuration("RATELIMIT_IDLE_TIMEOUT", DefaultIdleTimeout),
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultCleanupInterval
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	return cfg
}

// StartRateLimitCleanup periodically drops idle clients from limiter until
// ctx is cancelled. It blocks; run it in its own goroutine.
func StartRateLimitCleanup(ctx context.Context, limiter *RateLimiter, cfg CleanupConfig) {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.Duration("interval", cfg.Interval),
		slog.Duration("idle_timeout", cfg.IdleTimeout))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return

		case <-ticker.C:
			removed := limiter.CleanupIdle(cfg.IdleTimeout)
			slog.Debug("rate limit cleanup completed",
				slog.Int("clients_removed", removed),
				slog.Int("clients_active", limiter.Clients()))
		}
	}
}
