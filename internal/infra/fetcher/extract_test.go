package fetcher

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textdigest/internal/usecase/fetch"
)

func TestFallbackText(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>
<nav><p>Menu</p></nav>
<div>
  <h2>Harvest   notes</h2>
  <p>Wheat came in early this year.</p>
  <ul><li><p>Barley was late.</p></li><li>Oats were fine.</li></ul>
  <script>track()</script>
</div>
</body></html>`

	got, err := fallbackText([]byte(html))

	require.NoError(t, err)
	assert.Equal(t, "Harvest notes\nWheat came in early this year.\nBarley was late.\nOats were fine.", got)
}

func TestFallbackText_BodyWithoutBlocks(t *testing.T) {
	got, err := fallbackText([]byte(`<html><body><div>Loose   text</div><span>here</span></body></html>`))

	require.NoError(t, err)
	assert.Equal(t, "Loose texthere", got)
}

func TestExtractText_NoContent(t *testing.T) {
	_, err := extractText([]byte(`<html><body><script>x()</script></body></html>`), &url.URL{Scheme: "https", Host: "example.com"})

	assert.ErrorIs(t, err, fetch.ErrExtractionFailed)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank lines dropped", "a\n\n \n\tb", "a\nb"},
		{"inner spaces collapsed", "  one   two\tthree  ", "one two three"},
		{"crlf", "x\r\ny", "x\ny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}
