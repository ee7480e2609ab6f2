package text

import (
	"strings"
	"unicode"
)

// Words splits s into case-folded word tokens. A word is a maximal run of
// letters, digits and combining marks; an apostrophe is kept only when it
// sits between two word runes ("don't", "o'clock"). Everything else,
// punctuation included, separates words and is dropped.
//
// Scripts written without spaces come back as one token per run, the same
// way a whitespace-driven word tokenizer treats them.
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, len(runes)/5+1)

	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case isApostrophe(r) && current.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return words
}

// CountWords returns len(Words(s)).
func CountWords(s string) int {
	return len(Words(s))
}

// WordSet returns the distinct case-folded words of s.
func WordSet(s string) map[string]struct{} {
	words := Words(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
