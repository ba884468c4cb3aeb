// Package render turns tutor output into styled terminal text. It is a
// line-oriented, single-pass transform: headings, lists, quotes, blank
// lines, and inline bold spans; anything else is a paragraph. No nested
// constructs, no state carried between lines.
package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeading1
	LineHeading2
	LineHeading3
	LineBullet
	LineOrdered
	LineQuote
	LineBlank
)

var orderedRe = regexp.MustCompile(`^\d+\.\s`)

// Classify maps one line to its kind and content with the prefix stripped.
func Classify(line string) (LineKind, string) {
	switch {
	case strings.TrimSpace(line) == "":
		return LineBlank, ""
	case strings.HasPrefix(line, "### "):
		return LineHeading3, strings.TrimPrefix(line, "### ")
	case strings.HasPrefix(line, "## "):
		return LineHeading2, strings.TrimPrefix(line, "## ")
	case strings.HasPrefix(line, "# "):
		return LineHeading1, strings.TrimPrefix(line, "# ")
	case strings.HasPrefix(strings.TrimSpace(line), "- "):
		return LineBullet, strings.TrimPrefix(strings.TrimSpace(line), "- ")
	case orderedRe.MatchString(strings.TrimSpace(line)):
		t := strings.TrimSpace(line)
		return LineOrdered, t
	case strings.HasPrefix(line, "> "):
		return LineQuote, strings.TrimPrefix(line, "> ")
	}
	return LineParagraph, line
}

var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Styles carries the lipgloss styles the renderer applies per line kind.
type Styles struct {
	Heading1  lipgloss.Style
	Heading2  lipgloss.Style
	Heading3  lipgloss.Style
	Bullet    lipgloss.Style
	Quote     lipgloss.Style
	Paragraph lipgloss.Style
	Bold      lipgloss.Style
}

func DefaultStyles() Styles {
	gold := lipgloss.Color("#C9A54E")
	ink := lipgloss.Color("#E8E4D8")
	return Styles{
		Heading1:  lipgloss.NewStyle().Foreground(gold).Bold(true).Underline(true),
		Heading2:  lipgloss.NewStyle().Foreground(gold).Bold(true),
		Heading3:  lipgloss.NewStyle().Foreground(ink).Bold(true),
		Bullet:    lipgloss.NewStyle().Foreground(ink),
		Quote:     lipgloss.NewStyle().Foreground(gold).Italic(true),
		Paragraph: lipgloss.NewStyle().Foreground(ink),
		Bold:      lipgloss.NewStyle().Foreground(ink).Bold(true),
	}
}

// Render styles a whole response for the viewport.
func Render(content string, st Styles) string {
	var sb strings.Builder
	for _, line := range strings.Split(content, "\n") {
		kind, text := Classify(line)
		switch kind {
		case LineBlank:
			sb.WriteString("\n")
			continue
		case LineHeading1:
			sb.WriteString(st.Heading1.Render(text))
		case LineHeading2:
			sb.WriteString(st.Heading2.Render(text))
		case LineHeading3:
			sb.WriteString(st.Heading3.Render(text))
		case LineBullet:
			sb.WriteString(st.Bullet.Render("  • " + inline(text, st)))
		case LineOrdered:
			sb.WriteString(st.Bullet.Render("  " + inline(text, st)))
		case LineQuote:
			sb.WriteString(st.Quote.Render("│ " + inline(text, st)))
		default:
			sb.WriteString(st.Paragraph.Render(inline(text, st)))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// inline resolves paired ** spans into bold styling.
func inline(text string, st Styles) string {
	return boldRe.ReplaceAllStringFunc(text, func(match string) string {
		return st.Bold.Render(match[2 : len(match)-2])
	})
}
