package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.85, cfg.Damping)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 100, cfg.MaxIterations)
	assert.False(t, cfg.Stemming)
	assert.NotNil(t, cfg.Stopwords)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "zero damping", mutate: func(c *Config) { c.Damping = 0 }, wantErr: "damping"},
		{name: "damping one", mutate: func(c *Config) { c.Damping = 1 }, wantErr: "damping"},
		{name: "negative tolerance", mutate: func(c *Config) { c.Tolerance = -1 }, wantErr: "tolerance"},
		{name: "zero iterations", mutate: func(c *Config) { c.MaxIterations = 0 }, wantErr: "max iterations"},
		{name: "too many iterations", mutate: func(c *Config) { c.MaxIterations = 20000 }, wantErr: "max iterations"},
		{name: "custom but valid", mutate: func(c *Config) { c.Damping = 0.5; c.MaxIterations = 500 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
