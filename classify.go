package revealdown

import (
	"regexp"
	"strconv"
)

// LineType describes the section boundary a line introduces.
type LineType int

const (
	NoBreak LineType = iota
	// SlideBreak starts a new top level slide.
	SlideBreak
	// SectionBreak starts a new sub-slide and keeps the line.
	SectionBreak
	// SectionBreakWhichReplacesLine starts a new sub-slide and drops the line.
	SectionBreakWhichReplacesLine
)

func (t LineType) String() string {
	switch t {
	case NoBreak:
		return "NoBreak"
	case SlideBreak:
		return "SlideBreak"
	case SectionBreak:
		return "SectionBreak"
	case SectionBreakWhichReplacesLine:
		return "SectionBreakWhichReplacesLine"
	default:
		return "LineType(" + strconv.Itoa(int(t)) + ")"
	}
}

var (
	hrRegex           = regexp.MustCompile(`(?i)^\s*<hr(?:[\s>/]|$)`)
	emptyCommentRegex = regexp.MustCompile(`^\s*<!--\s*-->`)
	headingRegex      = regexp.MustCompile(`(?i)^\s*<h(\d)(?:[\s>]|$)`)
)

// lineRule reports the LineType of a line if it applies to it.
type lineRule struct {
	name  string
	match func(line string) (LineType, bool)
}

func horizontalRuleRule(line string) (LineType, bool) {
	return SectionBreakWhichReplacesLine, hrRegex.MatchString(line)
}

func emptyCommentRule(line string) (LineType, bool) {
	return SectionBreakWhichReplacesLine, emptyCommentRegex.MatchString(line)
}

func headingRule(slideLevel int) func(string) (LineType, bool) {
	return func(line string) (LineType, bool) {
		m := headingRegex.FindStringSubmatch(line)
		if m == nil {
			return NoBreak, false
		}
		level := int(m[1][0] - '0')
		switch {
		case level <= slideLevel:
			return SlideBreak, true
		case level == slideLevel+1:
			return SectionBreak, true
		default:
			return NoBreak, true
		}
	}
}

// rules returns the classification rules in precedence order.
func (c Config) rules() []lineRule {
	rules := make([]lineRule, 0, 3)
	if c.HorizontalRuleBreaksSlide {
		rules = append(rules, lineRule{name: "hr", match: horizontalRuleRule})
	}
	rules = append(rules,
		lineRule{name: "empty-comment", match: emptyCommentRule},
		lineRule{name: "heading", match: headingRule(c.SlideLevel)},
	)
	return rules
}

// Classify returns the LineType of line. The first matching rule wins.
func (c Config) Classify(line string) LineType {
	return classify(c.rules(), line)
}

func classify(rules []lineRule, line string) LineType {
	for _, r := range rules {
		if t, ok := r.match(line); ok {
			return t
		}
	}
	return NoBreak
}
