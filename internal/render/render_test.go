package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		line string
		kind LineKind
		text string
	}{
		{"", LineBlank, ""},
		{"   ", LineBlank, ""},
		{"# Negligence", LineHeading1, "Negligence"},
		{"## Duty", LineHeading2, "Duty"},
		{"### Special Relationships", LineHeading3, "Special Relationships"},
		{"- first element", LineBullet, "first element"},
		{"  - indented bullet", LineBullet, "indented bullet"},
		{"1. Preparation", LineOrdered, "1. Preparation"},
		{"12. Lessons learned", LineOrdered, "12. Lessons learned"},
		{"> The court held otherwise.", LineQuote, "The court held otherwise."},
		{"Plain sentence.", LineParagraph, "Plain sentence."},
		{"#NotAHeading", LineParagraph, "#NotAHeading"},
		{"1.NoSpace", LineParagraph, "1.NoSpace"},
	}
	for _, tc := range cases {
		kind, text := Classify(tc.line)
		assert.Equal(t, tc.kind, kind, "line %q", tc.line)
		assert.Equal(t, tc.text, text, "line %q", tc.line)
	}
}

func TestRenderKeepsContentAndStripsMarkers(t *testing.T) {
	in := "# CFAA\n\nThe **key term** is authorization.\n- damage\n- loss\n> exceeds authorized access"
	out := Render(in, DefaultStyles())

	assert.Contains(t, out, "CFAA")
	assert.Contains(t, out, "key term")
	assert.Contains(t, out, "authorization")
	assert.Contains(t, out, "• damage")
	assert.Contains(t, out, "│ exceeds authorized access")
	assert.NotContains(t, out, "# CFAA")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "- damage")
}

func TestRenderPreservesBlankLines(t *testing.T) {
	out := Render("one\n\ntwo", DefaultStyles())
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestRenderLeavesUnpairedAsterisksAlone(t *testing.T) {
	out := Render("a ** b", DefaultStyles())
	assert.Contains(t, out, "a ** b")
}
