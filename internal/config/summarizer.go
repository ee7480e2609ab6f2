// Package config assembles the application configuration from environment
// variables. Every loader validates its result so that the process refuses
// to start on a bad value instead of failing on the first request.
package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"textdigest/internal/domain/entity"
	"textdigest/internal/infra/summarizer"
	"textdigest/internal/usecase/summarize"
	"textdigest/internal/utils/text"
	envconfig "textdigest/pkg/config"
)

// SummarizerConfig combines the ranking tunables with the request defaults
// and limits of the summarize service.
type SummarizerConfig struct {
	Ranking summarizer.Config
	Service summarize.Config

	// StopwordsFile is the YAML list the stopwords were loaded from; empty
	// means the embedded English list.
	StopwordsFile string
}

// LoadSummarizerConfig reads SUMMARIZER_* variables.
//
//   - SUMMARIZER_DEFAULT_COMPRESSION_RATIO (0.5)
//   - SUMMARIZER_DEFAULT_LAYOUT (plain)
//   - SUMMARIZER_DAMPING (0.85)
//   - SUMMARIZER_TOLERANCE (1e-6)
//   - SUMMARIZER_MAX_ITERATIONS (100)
//   - SUMMARIZER_STOPWORDS_FILE (embedded English list)
//   - SUMMARIZER_STEMMING (false)
//   - SUMMARIZER_MAX_DOCUMENT_RUNES (200000)
//   - SUMMARIZER_BATCH_PARALLELISM (4)
//   - SUMMARIZER_TIMEOUT (30s)
func LoadSummarizerConfig() (*SummarizerConfig, error) {
	ranking := summarizer.DefaultConfig()
	service := summarize.DefaultConfig()

	cfg := &SummarizerConfig{
		Ranking: summarizer.Config{
			Damping:       envconfig.GetEnvFloat("SUMMARIZER_DAMPING", ranking.Damping),
			Tolerance:     envconfig.GetEnvFloat("SUMMARIZER_TOLERANCE", ranking.Tolerance),
			MaxIterations: envconfig.GetEnvInt("SUMMARIZER_MAX_ITERATIONS", ranking.MaxIterations),
			Stemming:      envconfig.GetEnvBool("SUMMARIZER_STEMMING", ranking.Stemming),
		},
		Service: summarize.Config{
			DefaultCompressionRatio: envconfig.GetEnvFloat("SUMMARIZER_DEFAULT_COMPRESSION_RATIO", service.DefaultCompressionRatio),
			DefaultLayout:           entity.Layout(strings.ToLower(envconfig.GetEnvString("SUMMARIZER_DEFAULT_LAYOUT", service.DefaultLayout.String()))),
			MaxDocumentRunes:        envconfig.GetEnvInt("SUMMARIZER_MAX_DOCUMENT_RUNES", service.MaxDocumentRunes),
			BatchParallelism:        envconfig.GetEnvInt("SUMMARIZER_BATCH_PARALLELISM", service.BatchParallelism),
			Timeout:                 envconfig.GetEnvDuration("SUMMARIZER_TIMEOUT", service.Timeout),
		},
		StopwordsFile: envconfig.GetEnvString("SUMMARIZER_STOPWORDS_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}

	stopwords, err := text.LoadStopwords(cfg.StopwordsFile)
	if err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}
	cfg.Ranking.Stopwords = stopwords

	return cfg, nil
}

// Validate checks every field. Stopwords are validated when loaded.
func (c *SummarizerConfig) Validate() error {
	if err := c.Ranking.Validate(); err != nil {
		return err
	}

	ratio := c.Service.DefaultCompressionRatio
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return fmt.Errorf("SUMMARIZER_DEFAULT_COMPRESSION_RATIO must be between 0.0 and 1.0, got %v", ratio)
	}

	if !c.Service.DefaultLayout.IsValid() {
		return fmt.Errorf("SUMMARIZER_DEFAULT_LAYOUT must be one of %v, got %q", entity.Layouts, c.Service.DefaultLayout)
	}

	if err := envconfig.ValidateIntRange("SUMMARIZER_MAX_DOCUMENT_RUNES", c.Service.MaxDocumentRunes, 1, 10_000_000); err != nil {
		return err
	}

	if err := envconfig.ValidateIntRange("SUMMARIZER_BATCH_PARALLELISM", c.Service.BatchParallelism, 1, 64); err != nil {
		return err
	}

	if err := envconfig.ValidateDurationRange(c.Service.Timeout, 0, 10*time.Minute); err != nil {
		return fmt.Errorf("SUMMARIZER_TIMEOUT: %w", err)
	}

	return nil
}
