package readme

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	fenceMarker = "```"

	// defaultLanguage is assumed for undeclared fences; the tool targets
	// Python packages, whose READMEs overwhelmingly show Python.
	defaultLanguage = "python"

	fallbackTitle = "Code Example"
	inlineTitle   = "Quick Example"
)

// languageAliases maps fence tags to their canonical names. Unrecognized
// tags pass through lower-cased.
var languageAliases = map[string]string{
	"py":       "python",
	"python3":  "python",
	"shell":    "bash",
	"sh":       "bash",
	"console":  "bash",
	"terminal": "bash",
	"cmd":      "bash",
	"yml":      "yaml",
	"cfg":      "ini",
	"conf":     "ini",
}

var (
	headingRE    = regexp.MustCompile(`^#+\s+(.*)$`)
	inlineSpanRE = regexp.MustCompile("`([^`\n]+)`")
	methodCallRE = regexp.MustCompile(`\w+\.\w+\(`)
	callRE       = regexp.MustCompile(`\w+\(`)
)

// normalizeLanguage resolves a raw fence tag to its canonical name.
// Tags like "python title=app.py" keep only the leading token.
func normalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, " \t"); i >= 0 {
		tag = tag[:i]
	}
	if canonical, ok := languageAliases[tag]; ok {
		return canonical
	}
	return tag
}

// formatTitle turns a lower-cased section name into a display title by
// capitalizing each word. An empty section yields the fallback.
func formatTitle(section string) string {
	if section == "" {
		return fallbackTitle
	}
	words := strings.Fields(section)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// hasAssignment reports whether s contains a plain assignment, as opposed
// to an equality comparison.
func hasAssignment(s string) bool {
	return strings.Contains(s, "=") && !strings.Contains(s, "==")
}

// looksLikeUsageFragment is the lighter classifier applied to inline code
// spans: the span must read like executable Python rather than an
// identifier mentioned in prose.
func looksLikeUsageFragment(s string) bool {
	return strings.Contains(s, "import ") ||
		hasAssignment(s) ||
		methodCallRE.MatchString(s)
}

// extract scans cleaned text for candidate examples: fenced code blocks
// filtered through the classifier, plus inline code spans that look like
// usage fragments. Candidates come back in document order; ranking and
// deduplication happen later.
func (m *Miner) extract(text string) []UsageExample {
	var (
		candidates []UsageExample
		section    string   // current heading, lower-cased, hashes stripped
		descLines  []string // prose collected inside a usage section
		inFence    bool
		fenceLang  string
		blockLines []string
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			if !inFence {
				inFence = true
				fenceLang = normalizeLanguage(trimmed[len(fenceMarker):])
				if fenceLang == "" {
					fenceLang = defaultLanguage
				}
				blockLines = blockLines[:0]
				continue
			}

			// Fence closed: the accumulated body is a candidate.
			inFence = false
			code := strings.TrimSpace(strings.Join(blockLines, "\n"))
			if m.isUsageExample(code, fenceLang, section) {
				candidates = append(candidates, UsageExample{
					Title:       formatTitle(section),
					Description: strings.TrimSpace(strings.Join(descLines, " ")),
					Code:        code,
					Language:    fenceLang,
				})
				descLines = descLines[:0]
			}
			continue
		}

		if inFence {
			// Verbatim, blank lines included; only the outer edges of the
			// finished block get trimmed.
			blockLines = append(blockLines, line)
			continue
		}

		if h := headingRE.FindStringSubmatch(trimmed); h != nil {
			section = strings.ToLower(strings.TrimSpace(h[1]))
			descLines = descLines[:0]
			continue
		}

		if m.isUsageSection(section) && trimmed != "" {
			descLines = append(descLines, trimmed)
		}

		candidates = append(candidates, m.inlineCandidates(line)...)
	}

	// An unclosed fence at EOF is malformed input; its body is discarded.
	return candidates
}

// inlineCandidates extracts usage-looking inline code spans from a line of
// running text.
func (m *Miner) inlineCandidates(line string) []UsageExample {
	var out []UsageExample
	for _, match := range inlineSpanRE.FindAllStringSubmatch(line, -1) {
		span := strings.TrimSpace(match[1])
		if len(span) < m.cfg.MinSnippetLen || len(span) > m.cfg.MaxSnippetLen {
			continue
		}
		if !looksLikeUsageFragment(span) {
			continue
		}
		out = append(out, UsageExample{
			Title:    inlineTitle,
			Code:     span,
			Language: defaultLanguage,
		})
	}
	return out
}
