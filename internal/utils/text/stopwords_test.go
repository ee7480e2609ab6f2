package text_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textdigest/internal/utils/text"
)

/* ───────── Stopword sets ───────── */

func TestDefaultStopwords(t *testing.T) {
	sw := text.DefaultStopwords()

	assert.Equal(t, 179, sw.Len())
	for _, w := range []string{"the", "a", "and", "no", "on", "off", "y", "don't", "wouldn't"} {
		assert.True(t, sw.Contains(w), "expected %q to be a stopword", w)
	}
	assert.True(t, sw.Contains("The"), "lookup is case-insensitive")
	assert.False(t, sw.Contains("cat"))
	assert.False(t, sw.Contains(""))
}

func TestDefaultStopwords_SharedInstance(t *testing.T) {
	first := text.DefaultStopwords()
	second := text.DefaultStopwords()

	assert.Equal(t, first.Len(), second.Len())
}

func TestLoadStopwords(t *testing.T) {
	t.Run("empty path returns embedded list", func(t *testing.T) {
		sw, err := text.LoadStopwords("")
		require.NoError(t, err)
		assert.Equal(t, 179, sw.Len())
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stop.yaml")
		content := "language: custom\nwords:\n  - \"Foo\"\n  - \" bar \"\n  - \"\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		sw, err := text.LoadStopwords(path)
		require.NoError(t, err)
		assert.Equal(t, 2, sw.Len())
		assert.True(t, sw.Contains("foo"))
		assert.True(t, sw.Contains("bar"))
		assert.False(t, sw.Contains("the"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := text.LoadStopwords(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read stopwords file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("words: [unterminated"), 0o600))

		_, err := text.LoadStopwords(path)
		require.Error(t, err)
	})
}

func TestParseStopwords_Empty(t *testing.T) {
	_, err := text.ParseStopwords([]byte("language: english\nwords: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
