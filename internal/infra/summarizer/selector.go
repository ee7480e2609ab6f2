package summarizer

import (
	"sort"

	"textdigest/internal/domain/entity"
)

// SelectTop keeps the target highest-scoring sentences and returns them in
// original document order. Ties keep encounter order. When there are no more
// sentences than target, every sentence is returned unchanged.
func SelectTop(sentences []string, scores []float64, target int) entity.Summary {
	summary := entity.Summary{SourceSentences: len(sentences)}
	if len(sentences) == 0 || target <= 0 {
		return summary
	}

	if len(sentences) <= target {
		summary.Sentences = make([]entity.Sentence, len(sentences))
		for i, s := range sentences {
			summary.Sentences[i] = entity.Sentence{Index: i, Text: s}
		}
		return summary
	}

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scoreAt(scores, order[a]) > scoreAt(scores, order[b])
	})

	selected := order[:target]
	sort.Ints(selected)

	summary.Sentences = make([]entity.Sentence, len(selected))
	for i, idx := range selected {
		summary.Sentences[i] = entity.Sentence{Index: idx, Text: sentences[idx]}
	}
	return summary
}

func scoreAt(scores []float64, i int) float64 {
	if i < len(scores) {
		return scores[i]
	}
	return 0
}
