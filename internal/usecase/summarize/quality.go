package summarize

import (
	"math"

	"textdigest/internal/domain/entity"
	"textdigest/internal/utils/text"
)

// CompressionRatio returns the fraction of original's words that the summary
// removed, in [0,1]. It is 0 when either text has no words or when the
// summary is longer than the original.
func CompressionRatio(original, summary string) float64 {
	originalWords := text.CountWords(original)
	summaryWords := text.CountWords(summary)
	if originalWords == 0 || summaryWords == 0 || summaryWords > originalWords {
		return 0
	}
	ratio := float64(originalWords-summaryWords) / float64(originalWords)
	return math.Max(0, math.Min(1, ratio))
}

// QualityScore is the share of reference's distinct words that also occur in
// candidate (unigram recall). It is a cheap proxy, not a ROUGE
// implementation: word order, frequency and synonyms are ignored. An empty
// reference scores 0.
func QualityScore(reference, candidate string) float64 {
	ref := text.WordSet(reference)
	if len(ref) == 0 {
		return 0
	}
	cand := text.WordSet(candidate)

	overlap := 0
	for w := range ref {
		if _, ok := cand[w]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(ref))
}

// ComputeMetrics describes summary against the document it was drawn from.
func ComputeMetrics(document string, summary entity.Summary, script text.Script) entity.Metrics {
	summaryText := summary.Text()
	return entity.Metrics{
		WordCount:             text.CountWords(summaryText),
		SentenceCount:         len(text.Segment(summaryText, script)),
		CompressionRatio:      CompressionRatio(document, summaryText),
		QualityScore:          QualityScore(document, summaryText),
		OriginalWordCount:     text.CountWords(document),
		OriginalSentenceCount: summary.SourceSentences,
	}
}
