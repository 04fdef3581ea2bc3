package readme

import (
	"regexp"
	"sort"
	"strings"
)

var whitespaceRunRE = regexp.MustCompile(`\s+`)

// normalizeKey canonicalizes snippet text for duplicate detection: case,
// whitespace runs, and quote style are unified so that reformatted copies
// of one snippet collapse to the same key.
func normalizeKey(code string) string {
	key := strings.ToLower(code)
	key = whitespaceRunRE.ReplaceAllString(key, " ")
	key = strings.ReplaceAll(key, "'", `"`)
	return strings.TrimSpace(key)
}

// scoreRule is one entry of the ranking policy: a named predicate and the
// points it contributes when it matches.
type scoreRule struct {
	name   string
	points int
	match  func(e UsageExample) bool
}

// scoreRules reward the traits that make an example instructive. Points are
// additive; the length shaping below is handled separately because it is
// not a flat bonus.
var scoreRules = []scoreRule{
	{
		name:   "has import",
		points: 50,
		match:  func(e UsageExample) bool { return strings.Contains(e.Code, "import ") },
	},
	{
		name:   "has from-import",
		points: 45,
		match:  func(e UsageExample) bool { return strings.Contains(e.Code, "from ") },
	},
	{
		name:   "has assignment",
		points: 30,
		match:  func(e UsageExample) bool { return hasAssignment(e.Code) },
	},
	{
		name:   "has method call",
		points: 25,
		match:  func(e UsageExample) bool { return methodCallRE.MatchString(e.Code) },
	},
	{
		name:   "has description",
		points: 15,
		match:  func(e UsageExample) bool { return e.Description != "" },
	},
}

// score computes the relevance of one example. Scores may go negative for
// very long snippets; ordering is relative, so that is fine.
func (m *Miner) score(e UsageExample) int {
	total := 0
	for _, rule := range scoreRules {
		if rule.match(e) {
			total += rule.points
		}
	}

	title := strings.ToLower(e.Title)
	for _, word := range m.cfg.GoodTitleWords {
		if strings.Contains(title, word) {
			total += 20
			break
		}
	}

	switch n := len(e.Code); {
	case n >= 50 && n <= m.cfg.IdealSnippetLen:
		total += 10
	case n > m.cfg.IdealSnippetLen:
		total -= (n - m.cfg.IdealSnippetLen) / 100
	}

	return total
}

// dedupeAndRank drops near-identical snippets and orders the rest by
// relevance. Deduplication keeps the first occurrence per normalized key;
// the sort is stable, so equally scored examples preserve extraction order.
func (m *Miner) dedupeAndRank(examples []UsageExample) []UsageExample {
	seen := make(map[string]bool, len(examples))
	unique := make([]UsageExample, 0, len(examples))
	for _, e := range examples {
		key := normalizeKey(e.Code)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, e)
	}

	scores := make([]int, len(unique))
	for i, e := range unique {
		scores[i] = m.score(e)
	}
	order := make([]int, len(unique))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranked := make([]UsageExample, 0, len(unique))
	for _, idx := range order {
		ranked = append(ranked, unique[idx])
	}

	if len(ranked) > m.cfg.MaxExamples {
		ranked = ranked[:m.cfg.MaxExamples]
	}
	if len(ranked) == 0 {
		return nil
	}
	return ranked
}
