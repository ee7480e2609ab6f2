package summarize

import (
	"strings"

	"textdigest/internal/domain/entity"
	"textdigest/internal/utils/text"
)

// Bullet glyphs.
const (
	bulletDefault  = "•"
	bulletJapanese = "・"
)

// Paragraph sizes in sentences.
const (
	paragraphSizeDefault = 3
	paragraphSizeDense   = 2
)

// Format renders summaryText in the given layout. Bullet and paragraph
// layouts re-split the text with the script's sentence rules; they only
// regroup and decorate sentences and never change their content.
func Format(summaryText string, script text.Script, layout entity.Layout) string {
	switch layout {
	case entity.LayoutBullet:
		return formatBullets(summaryText, script)
	case entity.LayoutParagraph:
		return formatParagraphs(summaryText, script)
	default:
		return summaryText
	}
}

// formatBullets puts each sentence on its own line behind a bullet glyph.
// Japanese text (CJK with kana) gets the middle dot used in Japanese lists.
func formatBullets(summaryText string, script text.Script) string {
	bullet := bulletDefault
	if script == text.ScriptCJK && text.ContainsKana(summaryText) {
		bullet = bulletJapanese
	}

	sentences := text.SegmentForLayout(summaryText, script)
	lines := make([]string, len(sentences))
	for i, s := range sentences {
		lines[i] = bullet + " " + s
	}
	return strings.Join(lines, "\n")
}

// formatParagraphs groups consecutive sentences, two per paragraph for CJK
// and Devanagari text and three otherwise, separated by blank lines.
func formatParagraphs(summaryText string, script text.Script) string {
	size := paragraphSizeDefault
	if script == text.ScriptCJK || script == text.ScriptDevanagari {
		size = paragraphSizeDense
	}

	sentences := text.SegmentForLayout(summaryText, script)
	paragraphs := make([]string, 0, (len(sentences)+size-1)/size)
	for start := 0; start < len(sentences); start += size {
		end := min(start+size, len(sentences))
		paragraphs = append(paragraphs, strings.Join(sentences[start:end], " "))
	}
	return strings.Join(paragraphs, "\n\n")
}
