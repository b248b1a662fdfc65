// Package revealdown turns flat HTML, as produced by a Markdown converter,
// into nested reveal.js slide sections.
package revealdown

import (
	"regexp"
	"strings"
)

const (
	slideOpenTag    = `<section class="level1">`
	subSlideOpenTag = `<section class="level2">`
	sectionCloseTag = `</section>`
)

var (
	bodyOpenRegex  = regexp.MustCompile(`(?i)<body(?:>| )`)
	bodyCloseRegex = regexp.MustCompile(`(?i)</body>`)
)

// extractBody returns the lines following the opening body tag, up to but
// excluding the closing one. With requireOpen unset the body starts at the
// first line. found is false if requireOpen is set and no opening tag exists.
func extractBody(lines []string, requireOpen bool) (body []string, found bool) {
	found = !requireOpen
	for _, line := range lines {
		if !found {
			found = bodyOpenRegex.MatchString(line)
			continue
		}
		if bodyCloseRegex.MatchString(line) {
			break
		}
		body = append(body, line)
	}
	return body, found
}

// bodyOf locates the body of a full document. Fragments without a body tag
// are taken whole, which also applies to documents with a <head> but no
// <body>.
func bodyOf(lines []string) []string {
	if body, found := extractBody(lines, true); found {
		return body
	}
	body, _ := extractBody(lines, false)
	return body
}

type sectionWriter struct {
	buf *strings.Builder
}

func (w sectionWriter) line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w sectionWriter) openSlide() {
	w.line(slideOpenTag)
	w.line(subSlideOpenTag)
}

func (w sectionWriter) closeSlide() {
	w.line(sectionCloseTag)
	w.line(sectionCloseTag)
}

func (w sectionWriter) breakFor(t LineType) {
	switch t {
	case SlideBreak:
		w.closeSlide()
		w.openSlide()
	case SectionBreak, SectionBreakWhichReplacesLine:
		w.line(sectionCloseTag)
		w.line(subSlideOpenTag)
	}
}

// BuildSlides partitions the body of an HTML document into slides and
// sub-slides and wraps the result in the configured page template.
//
// A slide and a sub-slide section are open from the start, so the first
// breaking line does not emit any tags of its own.
func (c Config) BuildSlides(lines []string) string {
	rules := c.rules()
	buf := &strings.Builder{}
	w := sectionWriter{buf: buf}

	if c.AddHeaderFooter {
		buf.WriteString(c.Header)
	}
	buf.WriteString(c.SlidesOpen)

	w.openSlide()
	awaitingFirstBreak := true
	for _, line := range bodyOf(lines) {
		t := classify(rules, line)
		if awaitingFirstBreak && t != NoBreak {
			awaitingFirstBreak = false
		} else {
			w.breakFor(t)
		}
		if t != SectionBreakWhichReplacesLine {
			w.line(line)
		}
	}
	w.closeSlide()

	buf.WriteString(c.SlidesClose)
	if c.AddHeaderFooter {
		buf.WriteString(c.Footer)
	}
	return buf.String()
}
