package text

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"golang.org/x/text/unicode/norm"
)

var (
	// punktOnce guards the one-time load of the embedded Punkt english model.
	punktOnce      sync.Once
	punktTokenizer *sentences.DefaultSentenceTokenizer
	punktErr       error
)

// Terminal punctuation closing a sentence in the buffered splitters.
var (
	cjkTerminals        = []rune{'。', '！', '？', '．', '!', '?', '.'}
	devanagariTerminals = []rune{'।', '!', '?', '.'}

	// ellipsis closes a sentence only when re-segmenting for layout.
	ellipsis = '…'
)

// Normalize applies NFC composition, collapses every run of whitespace to a
// single space and trims the result.
func Normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// Segment splits a document into sentences in reading order. The document is
// normalized first; empty sentences are dropped.
//
// Default-script text goes through the Punkt english model. CJK and
// Devanagari text is split after every terminal punctuation mark, which is
// coarser than a linguistic splitter but needs no language model.
func Segment(s string, script Script) []string {
	return segment(Normalize(s), script, false)
}

// SegmentForLayout re-splits already summarized text for bullet and paragraph
// layouts. It keeps the text as given (no normalization) and additionally
// treats the ellipsis as terminal punctuation for CJK and Devanagari text.
func SegmentForLayout(s string, script Script) []string {
	return segment(s, script, true)
}

func segment(s string, script Script, layout bool) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	switch script {
	case ScriptCJK:
		return splitOnTerminals(s, terminalSet(cjkTerminals, layout))
	case ScriptDevanagari:
		return splitOnTerminals(s, terminalSet(devanagariTerminals, layout))
	default:
		return splitPunkt(s)
	}
}

func terminalSet(base []rune, withEllipsis bool) map[rune]struct{} {
	set := make(map[rune]struct{}, len(base)+1)
	for _, r := range base {
		set[r] = struct{}{}
	}
	if withEllipsis {
		set[ellipsis] = struct{}{}
	}
	return set
}

// splitOnTerminals accumulates runes into a buffer and closes a sentence at
// every terminal rune. A non-empty trailing buffer becomes the last sentence.
func splitOnTerminals(s string, terminals map[rune]struct{}) []string {
	var (
		out     []string
		current strings.Builder
	)
	flush := func() {
		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			out = append(out, sentence)
		}
		current.Reset()
	}

	for _, r := range s {
		current.WriteRune(r)
		if _, ok := terminals[r]; ok {
			flush()
		}
	}
	flush()

	return out
}

func splitPunkt(s string) []string {
	tokenizer, err := englishTokenizer()
	if err != nil {
		// The model is embedded, so this only happens with a corrupted build.
		return splitOnTerminals(s, terminalSet([]rune{'.', '!', '?'}, false))
	}

	raw := tokenizer.Tokenize(s)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		if trimmed := strings.TrimSpace(sent.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// englishTokenizer loads the Punkt model once; the tokenizer is read-only
// afterwards and shared by every caller.
func englishTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	punktOnce.Do(func() {
		punktTokenizer, punktErr = english.NewSentenceTokenizer(nil)
	})
	return punktTokenizer, punktErr
}
