package entity

import "math"

// ClampCompressionRatio normalizes a requested compression ratio (fraction of
// text to remove) into [0,1]. NaN falls back to def, which is clamped too.
func ClampCompressionRatio(ratio, def float64) float64 {
	if math.IsNaN(ratio) {
		ratio = def
	}
	if math.IsNaN(ratio) {
		return 0
	}
	return math.Max(0, math.Min(1, ratio))
}

// CompressionRatioFromPercent converts a slider-style percentage (0-100)
// into a ratio. The result still needs clamping.
func CompressionRatioFromPercent(percent float64) float64 {
	return percent / 100
}

// TargetSentenceCount returns how many of n sentences to keep for the given
// compression ratio: max(1, round(n*(1-ratio))), or 0 when n is 0.
func TargetSentenceCount(n int, ratio float64) int {
	if n <= 0 {
		return 0
	}
	target := int(math.Round(float64(n) * (1 - ClampCompressionRatio(ratio, 0))))
	if target < 1 {
		return 1
	}
	if target > n {
		return n
	}
	return target
}
