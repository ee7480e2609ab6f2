// Package entity defines the domain objects of a summarization run: sentences,
// summaries, metrics, layouts and the normalization rules for caller-supplied
// parameters.
package entity

import "strings"

// Sentence is one trimmed sentence of a document together with its position
// in the document's sentence sequence.
type Sentence struct {
	Index int
	Text  string
}

// Summary is an ordered subset of a document's sentences. Sentences are kept
// in original document order.
type Summary struct {
	Sentences []Sentence
	// SourceSentences is the number of sentences the document was split into.
	SourceSentences int
}

// Text joins the selected sentences with a single space.
func (s Summary) Text() string {
	parts := make([]string, len(s.Sentences))
	for i, sent := range s.Sentences {
		parts[i] = sent.Text
	}
	return strings.Join(parts, " ")
}

// Indices returns the source indices of the selected sentences.
func (s Summary) Indices() []int {
	idx := make([]int, len(s.Sentences))
	for i, sent := range s.Sentences {
		idx[i] = sent.Index
	}
	return idx
}

// Len returns the number of selected sentences.
func (s Summary) Len() int {
	return len(s.Sentences)
}

// Metrics describes a generated summary.
//
// QualityScore is a unigram-recall proxy (share of the reference's distinct
// words that appear in the summary), not a full ROUGE implementation.
type Metrics struct {
	WordCount             int     `json:"word_count"`
	SentenceCount         int     `json:"sentence_count"`
	CompressionRatio      float64 `json:"compression_ratio"`
	QualityScore          float64 `json:"quality_score"`
	OriginalWordCount     int     `json:"original_word_count"`
	OriginalSentenceCount int     `json:"original_sentence_count"`
}
