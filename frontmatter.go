package revealdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v2"
)

var frontMatterDelimiter = []byte(`+++`)

// DeckOptions are read from the front matter of a deck:
//
//	+++
//	title: My talk
//	slide_level: 2
//	+++
//	# First slide
type DeckOptions struct {
	Title                     string `yaml:"title"`
	Theme                     string `yaml:"theme"`
	SlideLevel                *int   `yaml:"slide_level"`
	HorizontalRuleBreaksSlide *bool  `yaml:"hr_breaks_slide"`
	AddHeaderFooter           *bool  `yaml:"header_footer"`
}

func parseFrontMatter(in []byte) (fm []byte, content []byte) {
	if !bytes.HasPrefix(in, frontMatterDelimiter) {
		return nil, in
	}

	parts := bytes.SplitN(in, frontMatterDelimiter, 3)
	if len(parts) < 3 {
		return nil, in
	}

	content = bytes.TrimPrefix(parts[2], []byte("\r"))
	content = bytes.TrimPrefix(content, []byte("\n"))
	return parts[1], content
}

// ParseDeckOptions splits off the front matter of a deck. Decks without
// front matter yield empty options and the unchanged input.
func ParseDeckOptions(in []byte) (*DeckOptions, []byte, error) {
	fm, content := parseFrontMatter(in)
	opts := &DeckOptions{}
	if len(bytes.TrimSpace(fm)) > 0 {
		if err := yaml.Unmarshal(fm, opts); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
	}
	return opts, content, nil
}

// Options converts the deck options to config options.
func (d *DeckOptions) Options() ([]Option, error) {
	var opts []Option
	if d.Title != "" || d.Theme != "" {
		header, err := RenderHeader(HeaderData{Title: d.Title, Theme: d.Theme})
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithHeader(header))
	}
	if d.SlideLevel != nil {
		opts = append(opts, WithSlideLevel(*d.SlideLevel))
	}
	if d.HorizontalRuleBreaksSlide != nil {
		opts = append(opts, WithHorizontalRuleBreaks(*d.HorizontalRuleBreaksSlide))
	}
	if d.AddHeaderFooter != nil {
		opts = append(opts, WithHeaderFooter(*d.AddHeaderFooter))
	}
	return opts, nil
}
