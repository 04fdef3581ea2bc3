package readme

import (
	"regexp"
	"strings"
)

var (
	htmlCommentRE  = regexp.MustCompile(`(?s)<!--.*?-->`)
	htmlTagRE      = regexp.MustCompile(`(?s)</?[a-zA-Z][^<>]*?>`)
	excessBlanksRE = regexp.MustCompile(`\n{3,}`)
	trailingWSRE   = regexp.MustCompile(`(?m)[ \t]+$`)
	horizontalRE   = regexp.MustCompile(`(?m)^[ \t]*(?:-(?:[ \t]*-){2,}|\*(?:[ \t]*\*){2,}|_(?:[ \t]*_){2,})[ \t]*$`)
	emptyLinkRE    = regexp.MustCompile(`\[([^\[\]]*)\]\(\s*\)`)
)

// clean applies the normalization steps in order. Running clean on its own
// output is a no-op.
func (m *Miner) clean(text string) string {
	if text == "" {
		return ""
	}

	// Unify line endings before the line-oriented steps.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// HTML comments, then tags (keeping the text between them), then empty
	// [text]() links (keeping the link text). Removing one form can expose
	// another ("<<p>b>" loses "<p>" and becomes "<b>"; "[a<]()b>" loses the
	// link and becomes "a<b>"), so the three substitutions repeat together
	// until the text settles. Each strictly shrinks, so the loop terminates.
	for {
		next := htmlCommentRE.ReplaceAllString(text, "")
		next = htmlTagRE.ReplaceAllString(next, "")
		next = emptyLinkRE.ReplaceAllString(next, "$1")
		if next == text {
			break
		}
		text = next
	}

	// Trailing whitespace per line, then paragraph-break collapsing. Link
	// removal already ran, so dropping one can't leave trailing space behind.
	text = trailingWSRE.ReplaceAllString(text, "")
	text = excessBlanksRE.ReplaceAllString(text, "\n\n")

	// Collapse horizontal-rule variants (***, ___, - - -) to a canonical rule.
	text = horizontalRE.ReplaceAllString(text, "---")

	return strings.TrimSpace(text)
}
