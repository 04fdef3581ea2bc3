package readme

import "strings"

// UsageExample is a code snippet mined from a package's documentation,
// together with the context needed to present it.
type UsageExample struct {
	Title       string `json:"title" yaml:"title"`             // derived from the nearest section heading
	Description string `json:"description,omitempty" yaml:"description,omitempty"` // prose preceding the snippet in a usage section
	Code        string `json:"code" yaml:"code"`               // snippet text, trimmed at the outer edges
	Language    string `json:"language" yaml:"language"`       // canonical language tag, defaults to "python"
}

// Config holds the tunable thresholds and vocabularies of the mining
// pipeline. Zero-value fields are not usable; start from [DefaultConfig]
// and override what a test or caller needs.
type Config struct {
	MinSnippetLen   int // snippets shorter than this are noise
	MaxSnippetLen   int // snippets longer than this are dumps, not examples
	IdealSnippetLen int // sweet-spot upper bound for the length bonus
	MaxExamples     int // cap on the returned list

	// RelevantLanguages are the declared fence languages worth keeping.
	// The empty string stands for an undeclared fence.
	RelevantLanguages []string

	// UsageSections is the heading vocabulary that marks a documentation
	// section as usage-oriented. Matched by substring in either direction.
	UsageSections []string

	// GoodTitleWords earn an example a ranking bonus when they appear in
	// its title.
	GoodTitleWords []string
}

// DefaultConfig returns the thresholds and vocabularies used by the
// package-level entry points.
func DefaultConfig() Config {
	return Config{
		MinSnippetLen:   10,
		MaxSnippetLen:   5000,
		IdealSnippetLen: 200,
		MaxExamples:     20,
		RelevantLanguages: []string{
			"python", "bash", "yaml", "json", "toml", "ini", "",
		},
		UsageSections: []string{
			"usage", "example", "examples", "quickstart", "quick start",
			"getting started", "tutorial", "how to use", "basic usage",
			"demo", "sample code", "code example", "api usage",
			"installation and usage",
		},
		GoodTitleWords: []string{
			"usage", "example", "quickstart", "basic", "simple", "getting started",
		},
	}
}

// Miner runs the documentation-mining pipeline. It carries only immutable
// configuration, so a single Miner is safe for concurrent use.
type Miner struct {
	cfg Config
}

// NewMiner creates a Miner with the given configuration.
func NewMiner(cfg Config) *Miner {
	return &Miner{cfg: cfg}
}

// CleanContent normalizes markdown-like documentation text: HTML comments
// and tags are stripped, excess blank lines collapsed, line endings unified,
// horizontal rules canonicalized, and empty links unwrapped.
//
// CleanContent never fails: a panic during processing returns the input
// unchanged, and empty input returns the empty string. The operation is
// idempotent.
func (m *Miner) CleanContent(text string) (out string) {
	defer func() {
		if recover() != nil {
			out = text
		}
	}()
	return m.clean(text)
}

// ExtractExamples mines usage examples from documentation text. The text is
// cleaned, scanned for fenced code blocks and inline code spans, filtered
// through the usage-example classifier, deduplicated, and ranked by
// relevance. At most Config.MaxExamples examples are returned, best first.
//
// ExtractExamples never fails: a panic during processing yields nil, as does
// input with no qualifying snippets.
func (m *Miner) ExtractExamples(text string) (examples []UsageExample) {
	defer func() {
		if recover() != nil {
			examples = nil
		}
	}()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	candidates := m.extract(m.clean(text))
	return m.dedupeAndRank(candidates)
}

var defaultMiner = NewMiner(DefaultConfig())

// CleanContent normalizes documentation text with [DefaultConfig].
func CleanContent(text string) string {
	return defaultMiner.CleanContent(text)
}

// ExtractExamples mines usage examples with [DefaultConfig].
func ExtractExamples(text string) []UsageExample {
	return defaultMiner.ExtractExamples(text)
}
