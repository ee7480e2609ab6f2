package summarizer

import "math"

// RankOptions controls the power iteration.
type RankOptions struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

// Rank scores the nodes of a weighted graph with PageRank. Edge weights act
// as transition affinities: a node passes its score to its neighbours in
// proportion to the edge weight over its total outgoing weight. Nodes with no
// outgoing weight are dangling and spread their score uniformly.
//
// Scores are non-negative and sum to 1. It also returns the number of
// iterations run.
func Rank(matrix [][]float64, opts RankOptions) ([]float64, int) {
	n := len(matrix)
	if n == 0 {
		return nil, 0
	}

	nf := float64(n)
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / nf
	}
	if n == 1 {
		return scores, 0
	}

	outWeight := make([]float64, n)
	for i, row := range matrix {
		for _, w := range row {
			outWeight[i] += w
		}
	}

	iterations := 0
	for iterations < opts.MaxIterations {
		iterations++

		dangling := 0.0
		for j := range n {
			if outWeight[j] == 0 {
				dangling += scores[j]
			}
		}

		base := (1-opts.Damping)/nf + opts.Damping*dangling/nf
		next := make([]float64, n)
		for i := range n {
			sum := 0.0
			for j := range n {
				if outWeight[j] > 0 && matrix[j][i] > 0 {
					sum += matrix[j][i] / outWeight[j] * scores[j]
				}
			}
			next[i] = base + opts.Damping*sum
		}

		delta := 0.0
		for i := range n {
			delta += math.Abs(next[i] - scores[i])
		}
		scores = next
		if delta < nf*opts.Tolerance {
			break
		}
	}

	normalize(scores)
	return scores, iterations
}

func normalize(scores []float64) {
	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		return
	}
	for i := range scores {
		scores[i] /= total
	}
}
