package fetcher

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"textdigest/internal/usecase/fetch"
)

// noiseSelector lists elements that never hold article prose.
const noiseSelector = "script, style, noscript, template, svg, iframe, nav, header, footer, aside, form, button"

// blockSelector lists elements whose text becomes one block in the fallback.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, figcaption, td"

// extractText returns the readable text of an HTML page, one block per line.
// Readability is tried first; pages it cannot handle fall back to the text of
// block-level elements.
func extractText(html []byte, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(html), pageURL)
	if err == nil {
		if text := cleanText(article.TextContent); text != "" {
			return text, nil
		}
	}

	text, fbErr := fallbackText(html)
	if fbErr != nil {
		return "", fmt.Errorf("%w: %v", fetch.ErrExtractionFailed, fbErr)
	}
	if text == "" {
		return "", fmt.Errorf("%w: no readable content found", fetch.ErrExtractionFailed)
	}
	return text, nil
}

func fallbackText(html []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find(noiseSelector).Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Containers are covered by their block children.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if line := collapseSpaces(s.Text()); line != "" {
			blocks = append(blocks, line)
		}
	})

	if len(blocks) == 0 {
		return cleanText(doc.Find("body").Text()), nil
	}
	return strings.Join(blocks, "\n"), nil
}

// cleanText collapses whitespace inside each line and drops blank lines.
func cleanText(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = collapseSpaces(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
