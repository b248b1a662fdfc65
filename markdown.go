package revealdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	blackfriday "gopkg.in/russross/blackfriday.v2"
)

func init() {
	useMarkdown(&BlackfridaySource{})
}

const markdownExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.FencedCode |
	blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.HeadingIDs |
	blackfriday.BackslashLineBreak | blackfriday.DefinitionLists

var markdownEngines = map[string]func() SourceConverter{
	"blackfriday": func() SourceConverter { return &BlackfridaySource{} },
	"goldmark":    func() SourceConverter { return NewGoldmarkSource() },
}

// UseMarkdownEngine selects the converter used for .md and .markdown files.
func UseMarkdownEngine(name string) error {
	newEngine, exists := markdownEngines[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	useMarkdown(newEngine())
	return nil
}

func useMarkdown(conv SourceConverter) {
	RegisterSourceFormat("md", conv)
	RegisterSourceFormat("markdown", conv)
}

// BlackfridaySource converts Markdown with blackfriday. Raw HTML, including
// comment separators, is kept.
type BlackfridaySource struct{}

func (m *BlackfridaySource) ToHTML(input []byte) (string, error) {
	out := blackfriday.Run(input,
		blackfriday.WithExtensions(
			markdownExtensions,
		),
	)
	return string(out), nil
}

// GoldmarkSource converts GitHub flavored Markdown with goldmark.
type GoldmarkSource struct {
	md goldmark.Markdown
}

func NewGoldmarkSource() *GoldmarkSource {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			// raw HTML has to survive for <!-- --> slide separators
			gmhtml.WithUnsafe(),
			gmhtml.WithXHTML(),
		),
	)
	return &GoldmarkSource{md: md}
}

func (g *GoldmarkSource) ToHTML(input []byte) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert(input, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
