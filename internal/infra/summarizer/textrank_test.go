package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textdigest/internal/utils/text"
	"textdigest/tests/fixtures"
)

const gardenDocument = "Cats and dogs play in the garden. Cats sleep all day. Dogs bark at night. " +
	"The garden has flowers. Stock prices fell sharply."

func newTestTextRank(t *testing.T, mutate func(*Config)) (*TextRank, *MockMetricsRecorder) {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	recorder := &MockMetricsRecorder{}
	tr, err := NewTextRankWithMetrics(cfg, recorder)
	require.NoError(t, err)
	return tr, recorder
}

func TestNewTextRank_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 2

	tr, err := NewTextRank(cfg)

	require.Error(t, err)
	assert.Nil(t, tr)
	assert.Contains(t, err.Error(), "invalid summarizer config")
}

func TestNewTextRank_NilStopwordsUsesEmbeddedList(t *testing.T) {
	tr, _ := newTestTextRank(t, func(c *Config) { c.Stopwords = nil })

	assert.Equal(t, text.DefaultStopwords().Len(), tr.cfg.Stopwords.Len())
}

func TestTextRank_Summarize_KeepsAllWhenRatioIsZero(t *testing.T) {
	tr, recorder := newTestTextRank(t, nil)

	summary, err := tr.Summarize(context.Background(),
		"A cat sat. A dog ran. The cat and dog played together happily.", 0)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, summary.Indices())
	assert.Equal(t, "A cat sat. A dog ran. The cat and dog played together happily.", summary.Text())
	assert.Equal(t, 1, recorder.ShortCircuits)
	assert.Empty(t, recorder.Iterations, "short circuit must not rank")
}

func TestTextRank_Summarize_SelectsCentralSentences(t *testing.T) {
	tr, recorder := newTestTextRank(t, nil)

	tests := []struct {
		name  string
		ratio float64
		want  []int
	}{
		{name: "one sentence", ratio: 0.8, want: []int{0}},
		{name: "two sentences", ratio: 0.6, want: []int{0, 3}},
		{name: "ratio above one behaves like one", ratio: 5, want: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := tr.Summarize(context.Background(), gardenDocument, tt.ratio)

			require.NoError(t, err)
			assert.Equal(t, tt.want, summary.Indices())
			assert.Equal(t, 5, summary.SourceSentences)
		})
	}

	assert.Len(t, recorder.Iterations, 3)
	assert.Len(t, recorder.Durations, 3)
}

func TestTextRank_Summarize_Empty(t *testing.T) {
	tr, recorder := newTestTextRank(t, nil)

	for _, doc := range []string{"", "   \n\t "} {
		summary, err := tr.Summarize(context.Background(), doc, 0.5)

		require.NoError(t, err)
		assert.Zero(t, summary.Len())
		assert.Zero(t, summary.SourceSentences)
		assert.Equal(t, "", summary.Text())
	}
	assert.Equal(t, []int{0, 0}, recorder.Sources)
}

func TestTextRank_Summarize_CJK(t *testing.T) {
	tr, _ := newTestTextRank(t, nil)

	summary, err := tr.Summarize(context.Background(), "今日は晴れです。明日は雨です。", 0)

	require.NoError(t, err)
	assert.Equal(t, "今日は晴れです。 明日は雨です。", summary.Text())
}

func TestTextRank_Summarize_OrderPreserved(t *testing.T) {
	tr, _ := newTestTextRank(t, nil)
	var b strings.Builder
	topics := []string{"rivers", "mountains", "rivers and lakes", "forests", "lakes", "deserts"}
	for i := 0; i < 40; i++ {
		b.WriteString("Travelers often write about ")
		b.WriteString(topics[i%len(topics)])
		b.WriteString(" in their journals. ")
	}

	summary, err := tr.Summarize(context.Background(), b.String(), 0.7)

	require.NoError(t, err)
	indices := summary.Indices()
	assert.Len(t, indices, 12)
	for i := 1; i < len(indices); i++ {
		assert.Less(t, indices[i-1], indices[i])
	}
}

func TestTextRank_Summarize_Stemming(t *testing.T) {
	tr, _ := newTestTextRank(t, func(c *Config) { c.Stemming = true })

	summary, err := tr.Summarize(context.Background(), gardenDocument, 0.8)

	require.NoError(t, err)
	assert.Equal(t, []int{0}, summary.Indices())
}

func TestTextRank_Summarize_ContextCanceled(t *testing.T) {
	tr, _ := newTestTextRank(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Summarize(ctx, gardenDocument, 0.5)
	assert.True(t, errors.Is(err, context.Canceled))

	// Documents that need no ranking are returned regardless.
	summary, err := tr.Summarize(ctx, "Only one sentence here.", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Len())
}

func TestTextRank_Summarize_DropsOfftopicSentence(t *testing.T) {
	tr, _ := newTestTextRank(t, nil)
	doc := fixtures.GenerateDocument(fixtures.DocumentOptions{
		Sentences: 9,
		Language:  fixtures.English,
		Offtopic:  true,
	})

	summary, err := tr.Summarize(context.Background(), doc, 0.5)

	require.NoError(t, err)
	assert.Equal(t, 10, summary.SourceSentences)
	assert.Len(t, summary.Indices(), 5)
	assert.NotContains(t, summary.Indices(), 9)
	assert.NotContains(t, summary.Text(), fixtures.OfftopicSentence(fixtures.English))
}

func TestTextRank_Summarize_JapaneseDocument(t *testing.T) {
	tr, _ := newTestTextRank(t, nil)
	n := fixtures.PoolSize(fixtures.Japanese)
	doc := fixtures.GenerateDocument(fixtures.DocumentOptions{Sentences: n, Language: fixtures.Japanese})

	summary, err := tr.Summarize(context.Background(), doc, 0.5)

	require.NoError(t, err)
	assert.Equal(t, n, summary.SourceSentences)
	assert.Len(t, summary.Indices(), n/2)
}
