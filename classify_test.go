package revealdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHeadingThreshold(t *testing.T) {
	c := NewConfig(WithSlideLevel(2))

	tests := []struct {
		line string
		want LineType
	}{
		{"<h1>Title</h1>", SlideBreak},
		{"<h2>Sub</h2>", SlideBreak},
		{"<h3>Detail</h3>", SectionBreak},
		{"<h4>X</h4>", NoBreak},
		{`<h3 id="detail">Detail</h3>`, SectionBreak},
		{"   <H1>Upper</H1>", SlideBreak},
		{"<p><h1>not leading</h1></p>", NoBreak},
		{"<hgroup>", NoBreak},
		{"<h12>", NoBreak},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.line))
		})
	}
}

func TestClassifyDefaultSlideLevel(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, SlideBreak, c.Classify("<h1>A</h1>"))
	assert.Equal(t, SectionBreak, c.Classify("<h2>B</h2>"))
	assert.Equal(t, NoBreak, c.Classify("<h3>C</h3>"))
}

func TestClassifyHorizontalRule(t *testing.T) {
	lines := []string{"<hr>", "<hr />", "<hr/>", "  <HR>", `<hr class="x">`}

	off := DefaultConfig()
	on := NewConfig(WithHorizontalRuleBreaks(true))
	for _, line := range lines {
		assert.Equal(t, NoBreak, off.Classify(line), line)
		assert.Equal(t, SectionBreakWhichReplacesLine, on.Classify(line), line)
	}
	assert.Equal(t, NoBreak, on.Classify("<p><hr></p>"))
	assert.Equal(t, NoBreak, on.Classify("<html>"))
}

func TestClassifyEmptyComment(t *testing.T) {
	c := DefaultConfig()
	for _, line := range []string{"<!---->", "<!-- -->", "  <!--   -->", "<!--\t-->", "<!-- --> trailing"} {
		assert.Equal(t, SectionBreakWhichReplacesLine, c.Classify(line), line)
	}
	assert.Equal(t, NoBreak, c.Classify("<!-- note -->"))
	assert.Equal(t, NoBreak, c.Classify("<p><!-- --></p>"))
}

func TestClassifyPrecedence(t *testing.T) {
	c := NewConfig(WithHorizontalRuleBreaks(true))
	rules := c.rules()
	if assert.Len(t, rules, 3) {
		assert.Equal(t, "hr", rules[0].name)
		assert.Equal(t, "empty-comment", rules[1].name)
		assert.Equal(t, "heading", rules[2].name)
	}
	assert.Len(t, DefaultConfig().rules(), 2)

	// a deeper heading is matched by the heading rule and must not fall
	// through to later rules
	custom := []lineRule{
		{name: "heading", match: headingRule(1)},
		{name: "always", match: func(string) (LineType, bool) { return SlideBreak, true }},
	}
	assert.Equal(t, NoBreak, classify(custom, "<h5>deep</h5>"))
	assert.Equal(t, SlideBreak, classify(custom, "<p>text</p>"))
}

func TestClassifyIsPure(t *testing.T) {
	c := NewConfig(WithSlideLevel(2), WithHorizontalRuleBreaks(true))
	before := c
	lines := []string{"<h1>a</h1>", "<h3>b</h3>", "<hr>", "<!-- -->", "text", ""}
	for i := 0; i < 3; i++ {
		for _, line := range lines {
			first := c.Classify(line)
			assert.Equal(t, first, c.Classify(line), line)
		}
	}
	assert.Equal(t, before, c)
}

func TestLineTypeString(t *testing.T) {
	assert.Equal(t, "NoBreak", NoBreak.String())
	assert.Equal(t, "SectionBreakWhichReplacesLine", SectionBreakWhichReplacesLine.String())
	assert.Equal(t, "LineType(9)", LineType(9).String())
}
