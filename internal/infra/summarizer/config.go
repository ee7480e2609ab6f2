package summarizer

import (
	"fmt"

	"textdigest/internal/utils/text"
)

// Ranking defaults.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100

	// maxIterationsLimit bounds MaxIterations so a bad config cannot stall a request.
	maxIterationsLimit = 10000
)

// Config holds the tunables of the TextRank summarizer.
type Config struct {
	// Damping is the PageRank damping factor, in (0,1).
	Damping float64

	// Tolerance is the per-node convergence threshold. Iteration stops once the
	// L1 change of the score vector falls below N*Tolerance.
	Tolerance float64

	// MaxIterations caps the number of power iterations.
	MaxIterations int

	// Stemming reduces Default-script tokens to their Snowball english stems
	// before similarity is computed.
	Stemming bool

	// Stopwords excluded from similarity vectors. Nil means the embedded
	// English list.
	Stopwords text.Stopwords
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Stopwords:     text.DefaultStopwords(),
	}
}

// Validate checks that every field is within its valid range.
func (c Config) Validate() error {
	if c.Damping <= 0 || c.Damping >= 1 {
		return fmt.Errorf("damping %v must be between 0 and 1 (exclusive)", c.Damping)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance %v must be positive", c.Tolerance)
	}
	if c.MaxIterations < 1 || c.MaxIterations > maxIterationsLimit {
		return fmt.Errorf("max iterations %d must be between 1 and %d", c.MaxIterations, maxIterationsLimit)
	}
	return nil
}
