package fetcher

import (
	"fmt"
	"time"

	"textdigest/internal/resilience/retry"
	"textdigest/pkg/config"
)

// SourceFetchConfig controls how documents are downloaded for URL requests.
type SourceFetchConfig struct {
	// Enabled turns URL requests on. When false the summarize service
	// rejects them with ErrSourceFetchDisabled.
	Enabled bool

	// Timeout bounds a single HTTP request, redirects included.
	Timeout time.Duration

	// MaxBodySize is enforced while reading, not from Content-Length.
	MaxBodySize int64

	// MaxRedirects is the number of redirects followed. Each target is
	// validated like the original URL.
	MaxRedirects int

	// DenyPrivateIPs rejects hosts that resolve to loopback, private or
	// link-local addresses.
	DenyPrivateIPs bool

	// UserAgent is sent with every request.
	UserAgent string

	// Retry controls retries of transient failures (5xx, 429, resets).
	Retry retry.Config
}

// DefaultConfig returns the production defaults.
func DefaultConfig() SourceFetchConfig {
	return SourceFetchConfig{
		Enabled:        true,
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "TextDigestBot/1.0",
		Retry:          retry.SourceFetchConfig(),
	}
}

// Validate checks that the limits are usable.
func (c *SourceFetchConfig) Validate() error {
	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}

	if err := config.ValidateIntRange("max body size", c.MaxBodySize, 1024, 100*1024*1024); err != nil {
		return err
	}

	if err := config.ValidateIntRange("max redirects", c.MaxRedirects, 0, 10); err != nil {
		return err
	}

	if err := config.ValidateIntRange("max attempts", c.Retry.MaxAttempts, 1, 10); err != nil {
		return err
	}

	if c.UserAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}

	return nil
}

// LoadConfigFromEnv reads SOURCE_FETCH_* variables on top of DefaultConfig.
//
//   - SOURCE_FETCH_ENABLED (true)
//   - SOURCE_FETCH_TIMEOUT (10s)
//   - SOURCE_FETCH_MAX_BODY_SIZE (10485760)
//   - SOURCE_FETCH_MAX_REDIRECTS (5)
//   - SOURCE_FETCH_DENY_PRIVATE_IPS (true)
//   - SOURCE_FETCH_USER_AGENT (TextDigestBot/1.0)
//   - SOURCE_FETCH_MAX_ATTEMPTS (3)
func LoadConfigFromEnv() (SourceFetchConfig, error) {
	cfg := DefaultConfig()

	cfg.Enabled = config.GetEnvBool("SOURCE_FETCH_ENABLED", cfg.Enabled)
	cfg.Timeout = config.GetEnvDuration("SOURCE_FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxBodySize = config.GetEnvInt64("SOURCE_FETCH_MAX_BODY_SIZE", cfg.MaxBodySize)
	cfg.MaxRedirects = config.GetEnvInt("SOURCE_FETCH_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.DenyPrivateIPs = config.GetEnvBool("SOURCE_FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	cfg.UserAgent = config.GetEnvString("SOURCE_FETCH_USER_AGENT", cfg.UserAgent)
	cfg.Retry.MaxAttempts = config.GetEnvInt("SOURCE_FETCH_MAX_ATTEMPTS", cfg.Retry.MaxAttempts)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
