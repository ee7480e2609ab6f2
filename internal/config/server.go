package config

import (
	"fmt"
	"strings"
	"time"

	envconfig "textdigest/pkg/config"
)

// ServerConfig holds the HTTP server settings of cmd/api.
type ServerConfig struct {
	Addr            string
	MaxBodyBytes    int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	// RateLimitTrustProxy keys clients by X-Forwarded-For / X-Real-IP.
	RateLimitTrustProxy bool

	LogLevel  string
	LogFormat string

	// TraceSampleRatio is the fraction of new traces sampled, 0 to 1.
	TraceSampleRatio float64
	Version          string
}

// LoadServerConfig reads HTTP_*, RATELIMIT_* and LOG_* variables.
//
//   - HTTP_ADDR (:8080)
//   - HTTP_MAX_BODY_BYTES (1048576)
//   - HTTP_READ_TIMEOUT (10s), HTTP_WRITE_TIMEOUT (60s), HTTP_SHUTDOWN_TIMEOUT (10s)
//   - RATELIMIT_ENABLED (true), RATELIMIT_RPS (5), RATELIMIT_BURST (10)
//   - RATELIMIT_TRUST_PROXY (false)
//   - LOG_LEVEL (info), LOG_FORMAT (json)
//   - TRACING_SAMPLE_RATIO (0.1), VERSION (dev)
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Addr:                envconfig.GetEnvString("HTTP_ADDR", ":8080"),
		MaxBodyBytes:        envconfig.GetEnvInt64("HTTP_MAX_BODY_BYTES", 1<<20),
		ReadTimeout:         envconfig.GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:        envconfig.GetEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:     envconfig.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		RateLimitEnabled:    envconfig.GetEnvBool("RATELIMIT_ENABLED", true),
		RateLimitRPS:        envconfig.GetEnvFloat("RATELIMIT_RPS", 5),
		RateLimitBurst:      envconfig.GetEnvInt("RATELIMIT_BURST", 10),
		RateLimitTrustProxy: envconfig.GetEnvBool("RATELIMIT_TRUST_PROXY", false),
		LogLevel:            strings.ToLower(envconfig.GetEnvString("LOG_LEVEL", "info")),
		LogFormat:           strings.ToLower(envconfig.GetEnvString("LOG_FORMAT", "json")),
		TraceSampleRatio:    envconfig.GetEnvFloat("TRACING_SAMPLE_RATIO", 0.1),
		Version:             envconfig.GetEnvString("VERSION", "dev"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}

	if err := envconfig.ValidateIntRange[int64]("HTTP_MAX_BODY_BYTES", c.MaxBodyBytes, 1024, 64<<20); err != nil {
		return err
	}

	for name, d := range map[string]time.Duration{
		"HTTP_READ_TIMEOUT":     c.ReadTimeout,
		"HTTP_WRITE_TIMEOUT":    c.WriteTimeout,
		"HTTP_SHUTDOWN_TIMEOUT": c.ShutdownTimeout,
	} {
		if err := envconfig.ValidatePositiveDuration(d); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if c.RateLimitEnabled {
		if c.RateLimitRPS <= 0 {
			return fmt.Errorf("RATELIMIT_RPS must be positive, got %v", c.RateLimitRPS)
		}
		if c.RateLimitBurst < 1 {
			return fmt.Errorf("RATELIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}

	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO must be between 0 and 1, got %v", c.TraceSampleRatio)
	}

	return nil
}
