package analyze

import (
	"strings"

	"clausescan/internal/domain/entity"
)

// maxMatchesPerCategory caps how many paragraphs a single category
// records. Legal documents repeat themselves; past ten matches more
// paragraphs add noise, not signal.
const maxMatchesPerCategory = 10

// ClassifyClauses scans each paragraph against every clause category and
// returns the matches grouped by category, in rule-table order. Matching
// is case-insensitive substring containment; within one category a
// paragraph is recorded at most once, on the first phrase that hits.
// Categories with no matches are omitted. Repeated identical paragraphs
// are recorded each time they appear.
func ClassifyClauses(rules Rules, paragraphs []string) map[string][]entity.ClauseMatch {
	matches := make(map[string][]entity.ClauseMatch)

	for _, p := range paragraphs {
		lower := strings.ToLower(p)
		for _, rule := range rules.Clauses {
			if len(matches[rule.Category]) >= maxMatchesPerCategory {
				continue
			}
			for _, phrase := range rule.Phrases {
				if strings.Contains(lower, phrase) {
					matches[rule.Category] = append(matches[rule.Category], entity.ClauseMatch{
						Category:  rule.Category,
						Paragraph: p,
					})
					break
				}
			}
		}
	}
	return matches
}
