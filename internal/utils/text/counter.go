// Package text holds the script-aware text primitives used by the summarizer:
// script classification, sentence segmentation, word tokenization, stopword
// sets and character counting.
package text

import "unicode/utf8"

// CountRunes counts the Unicode characters (runes) in text. Document size
// limits are expressed in runes so that CJK and Devanagari input is measured
// the same way as Latin input.
//
// Examples:
//
//	CountRunes("hello")      // 5
//	CountRunes("こんにちは")  // 5
//	CountRunes("नमस्ते")       // 6
//	CountRunes("")           // 0
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}
