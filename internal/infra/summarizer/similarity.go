package summarizer

import (
	"math"

	"github.com/kljensen/snowball"

	"textdigest/internal/utils/text"
)

// tokenizeSentences turns every sentence into its lowercase word tokens.
// With stem set, non-stopword tokens are replaced by their english stems;
// stopwords are kept verbatim so they still match the stopword set.
func tokenizeSentences(sentences []string, stopwords text.Stopwords, stem bool) [][]string {
	tokens := make([][]string, len(sentences))
	for i, s := range sentences {
		words := text.Words(s)
		if stem {
			for j, w := range words {
				if stopwords.Contains(w) {
					continue
				}
				if stemmed, err := snowball.Stem(w, "english", true); err == nil && stemmed != "" {
					words[j] = stemmed
				}
			}
		}
		tokens[i] = words
	}
	return tokens
}

// BuildSimilarityMatrix returns the dense N×N similarity graph for the
// tokenized sentences. The matrix is symmetric with a zero diagonal and every
// weight lies in [0,1].
func BuildSimilarityMatrix(tokens [][]string, stopwords text.Stopwords) [][]float64 {
	n := len(tokens)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := sentenceSimilarity(tokens[i], tokens[j], stopwords)
			matrix[i][j] = w
			matrix[j][i] = w
		}
	}
	return matrix
}

// sentenceSimilarity is the cosine similarity of the two sentences' term
// count vectors. The vocabulary covers every token of both sentences,
// stopwords included, but stopwords never add to a count. A sentence with no
// counted tokens has similarity 0 to everything.
func sentenceSimilarity(a, b []string, stopwords text.Stopwords) float64 {
	vocab := make(map[string]int, len(a)+len(b))
	for _, w := range a {
		if _, ok := vocab[w]; !ok {
			vocab[w] = len(vocab)
		}
	}
	for _, w := range b {
		if _, ok := vocab[w]; !ok {
			vocab[w] = len(vocab)
		}
	}

	va := countVector(a, vocab, stopwords)
	vb := countVector(b, vocab, stopwords)

	var dot, normA, normB float64
	for k := range va {
		dot += va[k] * vb[k]
		normA += va[k] * va[k]
		normB += vb[k] * vb[k]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim))
}

func countVector(words []string, vocab map[string]int, stopwords text.Stopwords) []float64 {
	v := make([]float64, len(vocab))
	for _, w := range words {
		if stopwords.Contains(w) {
			continue
		}
		v[vocab[w]]++
	}
	return v
}
