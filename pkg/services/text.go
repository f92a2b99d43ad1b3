package services

import (
	"regexp"
	"strings"
)

var (
	mdHeaders     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBoldItalic3 = regexp.MustCompile(`(\*\*\*|___)(.*?)(\*\*\*|___)`)
	mdBoldItalic2 = regexp.MustCompile(`(\*\*|__)(.*?)(\*\*|__)`)
	mdBoldItalic1 = regexp.MustCompile(`(\*|_)(.*?)(\*|_)`)
	mdStrike      = regexp.MustCompile(`~~(.*?)~~`)
	mdInlineCode  = regexp.MustCompile("`([^`]+)`")
	mdImages      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	mdLinks       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdBlockquote  = regexp.MustCompile(`(?m)^>\s+`)
	mdHRule       = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	mdUnordered   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	mdOrdered     = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	mdBlankRuns   = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes markdown formatting for plain-text contexts such as
// meta descriptions.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}
	out := mdHeaders.ReplaceAllString(text, "")
	out = mdBoldItalic3.ReplaceAllString(out, "$2")
	out = mdBoldItalic2.ReplaceAllString(out, "$2")
	out = mdBoldItalic1.ReplaceAllString(out, "$2")
	out = mdStrike.ReplaceAllString(out, "$1")
	out = mdInlineCode.ReplaceAllString(out, "$1")
	out = mdImages.ReplaceAllString(out, "$1")
	out = mdLinks.ReplaceAllString(out, "$1")
	out = mdBlockquote.ReplaceAllString(out, "")
	out = mdHRule.ReplaceAllString(out, "")
	out = mdUnordered.ReplaceAllString(out, "")
	out = mdOrdered.ReplaceAllString(out, "")
	out = mdBlankRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// TruncateText shortens text to at most maxLength runes, appending an
// ellipsis when it had to cut.
func TruncateText(text string, maxLength int) string {
	if text == "" || len([]rune(text)) <= maxLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLength-3])) + "..."
}
