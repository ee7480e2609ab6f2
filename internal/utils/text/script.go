package text

// Script is the writing-system family that drives sentence segmentation
// and layout rules.
type Script int

const (
	// ScriptDefault covers Latin and every script without dedicated rules.
	ScriptDefault Script = iota
	// ScriptCJK covers Han ideographs, Hiragana, Katakana and Hangul.
	ScriptCJK
	// ScriptDevanagari covers Hindi and other Devanagari text.
	ScriptDevanagari
)

// String returns the lowercase name used in API responses and logs.
func (s Script) String() string {
	switch s {
	case ScriptCJK:
		return "cjk"
	case ScriptDevanagari:
		return "devanagari"
	default:
		return "default"
	}
}

// Unicode block ranges checked by Classify.
const (
	hanFirst        = '\u4e00'
	hanLast         = '\u9fff'
	hiraganaFirst   = '\u3040'
	hiraganaLast    = '\u309f'
	katakanaFirst   = '\u30a0'
	katakanaLast    = '\u30ff'
	hangulFirst     = '\uac00'
	hangulLast      = '\ud7af'
	devanagariFirst = '\u0900'
	devanagariLast  = '\u097f'
)

func isKana(r rune) bool {
	return (r >= hiraganaFirst && r <= hiraganaLast) || (r >= katakanaFirst && r <= katakanaLast)
}

func isCJK(r rune) bool {
	return (r >= hanFirst && r <= hanLast) || isKana(r) || (r >= hangulFirst && r <= hangulLast)
}

func isDevanagari(r rune) bool {
	return r >= devanagariFirst && r <= devanagariLast
}

// Classify returns the script of text. A single CJK character is enough to
// classify the whole text as CJK; CJK takes precedence over Devanagari.
//
// Examples:
//
//	Classify("Hello world.")     // ScriptDefault
//	Classify("今日は晴れです。")      // ScriptCJK
//	Classify("यह एक वाक्य है।")     // ScriptDevanagari
func Classify(s string) Script {
	devanagari := false
	for _, r := range s {
		if isCJK(r) {
			return ScriptCJK
		}
		if !devanagari && isDevanagari(r) {
			devanagari = true
		}
	}
	if devanagari {
		return ScriptDevanagari
	}
	return ScriptDefault
}

// ContainsKana reports whether s contains Hiragana or Katakana, i.e. whether
// CJK text is Japanese.
func ContainsKana(s string) bool {
	for _, r := range s {
		if isKana(r) {
			return true
		}
	}
	return false
}
