package readme

import "strings"

// codeIndicators are substrings whose total absence marks a block as
// captured program output rather than code.
var codeIndicators = []string{
	"import", "from", "def", "class", "if", "for", "while", "try", "with", "=",
}

// configLanguages are languages whose blocks are valuable as configuration
// examples regardless of section.
var configLanguages = map[string]bool{
	"yaml": true,
	"json": true,
	"toml": true,
	"ini":  true,
}

// candidate bundles the inputs to a classification decision.
type candidate struct {
	code     string
	language string
	section  string
}

// classifierRule is one entry of the classification policy. Rules carry a
// name so individual policies can be tested in isolation.
type classifierRule struct {
	name  string
	match func(m *Miner, c candidate) bool
}

// rejectRules are evaluated in order; the first match discards the
// candidate before any acceptance rule runs.
var rejectRules = []classifierRule{
	{
		name: "length out of bounds",
		match: func(m *Miner, c candidate) bool {
			return len(c.code) < m.cfg.MinSnippetLen || len(c.code) > m.cfg.MaxSnippetLen
		},
	},
	{
		name: "irrelevant language",
		match: func(m *Miner, c candidate) bool {
			for _, lang := range m.cfg.RelevantLanguages {
				if c.language == lang {
					return false
				}
			}
			return true
		},
	},
	{
		// A Python block with no code indicators at all is captured program
		// output, not code. Other languages (bash commands, config formats)
		// legitimately lack these keywords, so the rule is scoped to Python.
		name: "output-only block",
		match: func(m *Miner, c candidate) bool {
			if c.language != "python" {
				return false
			}
			for _, kw := range codeIndicators {
				if strings.Contains(c.code, kw) {
					return false
				}
			}
			return !methodCallRE.MatchString(c.code) && !callRE.MatchString(c.code)
		},
	},
}

// acceptRules are evaluated after the rejections; any match keeps the
// candidate. False positives are cheap (an extra snippet shown), false
// negatives hide real examples, so the policy is deliberately generous.
var acceptRules = []classifierRule{
	{
		name: "python block",
		match: func(m *Miner, c candidate) bool {
			return c.language == "python"
		},
	},
	{
		name: "install command",
		match: func(m *Miner, c candidate) bool {
			return c.language == "bash" &&
				(strings.Contains(c.code, "pip install") || strings.Contains(c.code, "pipx install"))
		},
	},
	{
		name: "configuration block",
		match: func(m *Miner, c candidate) bool {
			return configLanguages[c.language]
		},
	},
	{
		name: "usage section",
		match: func(m *Miner, c candidate) bool {
			return m.isUsageSection(c.section)
		},
	},
}

// isUsageExample decides whether a fenced block is a genuine usage example.
// It is a pure predicate over its inputs.
func (m *Miner) isUsageExample(code, language, section string) bool {
	c := candidate{code: code, language: language, section: section}
	for _, rule := range rejectRules {
		if rule.match(m, c) {
			return false
		}
	}
	for _, rule := range acceptRules {
		if rule.match(m, c) {
			return true
		}
	}
	return false
}

// isUsageSection reports whether a heading belongs to the usage vocabulary.
// Matching runs by substring in either direction so that both "Usage" and
// "Usage with asyncio" qualify against the "usage" entry.
func (m *Miner) isUsageSection(section string) bool {
	if section == "" {
		return false
	}
	for _, term := range m.cfg.UsageSections {
		if strings.Contains(section, term) || strings.Contains(term, section) {
			return true
		}
	}
	return false
}
