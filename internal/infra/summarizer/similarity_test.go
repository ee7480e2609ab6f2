package summarizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textdigest/internal/utils/text"
)

func TestSentenceSimilarity(t *testing.T) {
	sw := text.DefaultStopwords()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{name: "identical", a: []string{"cat", "sat"}, b: []string{"cat", "sat"}, want: 1},
		{name: "disjoint", a: []string{"a", "cat", "sat"}, b: []string{"a", "dog", "ran"}, want: 0},
		{name: "half overlap", a: []string{"cat", "sat"}, b: []string{"cat", "played"}, want: 0.5},
		{name: "stopwords never count", a: []string{"the", "and", "cat"}, b: []string{"the", "and", "dog"}, want: 0},
		{name: "only stopwords", a: []string{"the", "a"}, b: []string{"cat"}, want: 0},
		{name: "both empty", a: nil, b: nil, want: 0},
		{name: "repeated terms", a: []string{"cat", "cat"}, b: []string{"cat"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sentenceSimilarity(tt.a, tt.b, sw)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.InDelta(t, got, sentenceSimilarity(tt.b, tt.a, sw), 1e-12, "similarity must be symmetric")
		})
	}
}

func TestBuildSimilarityMatrix(t *testing.T) {
	sw := text.DefaultStopwords()
	tokens := tokenizeSentences([]string{
		"Cats and dogs play in the garden.",
		"Cats sleep all day.",
		"Dogs bark at night.",
		"The garden has flowers.",
		"Stock prices fell sharply.",
	}, sw, false)

	matrix := BuildSimilarityMatrix(tokens, sw)

	require.Len(t, matrix, 5)
	for i := range matrix {
		require.Len(t, matrix[i], 5)
		assert.Zero(t, matrix[i][i], "diagonal must be zero")
		for j := range matrix[i] {
			assert.Equal(t, matrix[i][j], matrix[j][i], "matrix must be symmetric")
			assert.GreaterOrEqual(t, matrix[i][j], 0.0)
			assert.LessOrEqual(t, matrix[i][j], 1.0)
		}
	}

	assert.InDelta(t, 1/(2*math.Sqrt(3)), matrix[0][1], 1e-12)
	assert.InDelta(t, 1/(2*math.Sqrt(2)), matrix[0][3], 1e-12)
	assert.Zero(t, matrix[1][2])
	for j := 0; j < 4; j++ {
		assert.Zero(t, matrix[4][j], "unrelated sentence has no edges")
	}
}

func TestBuildSimilarityMatrix_Empty(t *testing.T) {
	assert.Empty(t, BuildSimilarityMatrix(nil, text.DefaultStopwords()))
}

func TestTokenizeSentences_Stemming(t *testing.T) {
	sw := text.DefaultStopwords()

	plain := tokenizeSentences([]string{"The cats were running."}, sw, false)
	stemmed := tokenizeSentences([]string{"The cats were running."}, sw, true)

	assert.Equal(t, [][]string{{"the", "cats", "were", "running"}}, plain)
	assert.Equal(t, [][]string{{"the", "cat", "were", "run"}}, stemmed)
}
