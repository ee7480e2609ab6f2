package entity

import "strings"

// Layout selects how a summary is rendered.
type Layout string

const (
	LayoutPlain     Layout = "plain"
	LayoutBullet    Layout = "bullet"
	LayoutParagraph Layout = "paragraph"
)

// Layouts lists every supported layout.
var Layouts = []Layout{LayoutPlain, LayoutBullet, LayoutParagraph}

// ParseLayout maps a caller-supplied selector to a Layout. Matching ignores
// case and surrounding whitespace; unknown values fall back to LayoutPlain.
func ParseLayout(s string) Layout {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutBullet:
		return LayoutBullet
	case LayoutParagraph:
		return LayoutParagraph
	default:
		return LayoutPlain
	}
}

// IsValid reports whether l is one of the supported layouts.
func (l Layout) IsValid() bool {
	switch l {
	case LayoutPlain, LayoutBullet, LayoutParagraph:
		return true
	}
	return false
}

func (l Layout) String() string {
	return string(l)
}
