package revealdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFormatLookup(t *testing.T) {
	for _, ext := range []string{"md", ".md", ".MD", "markdown"} {
		conv, err := SourceFormat(ext)
		require.NoError(t, err, ext)
		assert.IsType(t, &BlackfridaySource{}, conv)
	}
	for _, ext := range []string{"html", ".htm"} {
		conv, err := SourceFormat(ext)
		require.NoError(t, err, ext)
		assert.IsType(t, &HTMLSource{}, conv)
	}

	_, err := SourceFormat(".docx")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestBlackfridaySource(t *testing.T) {
	out, err := (&BlackfridaySource{}).ToHTML([]byte("# First\n\nhello\n\n<!-- -->\n\nworld\n"))
	require.NoError(t, err)

	lines := SplitLines(out)
	assert.Contains(t, lines, "<h1>First</h1>")
	assert.Contains(t, lines, "<p>hello</p>")
	assert.Contains(t, lines, "<!-- -->")
}

func TestGoldmarkSource(t *testing.T) {
	out, err := NewGoldmarkSource().ToHTML([]byte("# First\n\n<!-- -->\n\n---\n\nsecond\n"))
	require.NoError(t, err)

	lines := SplitLines(out)
	assert.Contains(t, lines, "<h1>First</h1>")
	assert.Contains(t, lines, "<!-- -->")
	assert.Contains(t, lines, "<hr />")
	assert.Contains(t, lines, "<p>second</p>")
}

func TestUseMarkdownEngine(t *testing.T) {
	defer UseMarkdownEngine("blackfriday")

	require.NoError(t, UseMarkdownEngine("goldmark"))
	conv, err := SourceFormat("md")
	require.NoError(t, err)
	assert.IsType(t, &GoldmarkSource{}, conv)

	require.NoError(t, UseMarkdownEngine("blackfriday"))
	conv, err = SourceFormat("markdown")
	require.NoError(t, err)
	assert.IsType(t, &BlackfridaySource{}, conv)

	err = UseMarkdownEngine("pandoc")
	assert.True(t, errors.Is(err, ErrUnknownEngine))
}

func TestHTMLSourcePassthrough(t *testing.T) {
	in := "<body>\n<h1>A</h1>\n</body>\n"
	out, err := (&HTMLSource{}).ToHTML([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
