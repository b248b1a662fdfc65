package revealdown

import (
	"fmt"
	"os"
	"strings"
)

var Version = "undefined"

// SplitLines splits converter output into lines. A final line terminator
// does not produce an empty trailing line.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// RenderDeck renders the deck source input into a reveal.js page. name
// selects the source converter by its extension. Front matter settings
// override the defaults and opts override both.
func RenderDeck(name string, input []byte, opts ...Option) ([]byte, error) {
	deck, body, err := ParseDeckOptions(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	conv, err := converterFor(name)
	if err != nil {
		return nil, err
	}
	html, err := conv.ToHTML(body)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", name, err)
	}

	deckOpts, err := deck.Options()
	if err != nil {
		return nil, err
	}
	cfg := NewConfig(append(deckOpts, opts...)...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return []byte(cfg.BuildSlides(SplitLines(html))), nil
}

// RenderFile reads the deck at path and renders it with RenderDeck.
func RenderFile(path string, opts ...Option) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return RenderDeck(path, buf, opts...)
}
