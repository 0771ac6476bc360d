package analyze

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClauseRule maps a clause category to the phrases that mark it. Rules are
// ordered slices, not maps: classification output and clause formatting
// must be deterministic, and iteration order carries that guarantee.
type ClauseRule struct {
	Category string   `yaml:"category"`
	Phrases  []string `yaml:"phrases"`
}

// RiskKeyword is a weighted phrase contributing to the document risk score.
type RiskKeyword struct {
	Phrase string `yaml:"phrase"`
	Weight int    `yaml:"weight"`
}

// Rules is the complete rule table driving clause classification and risk
// scoring.
type Rules struct {
	Clauses []ClauseRule  `yaml:"clauses"`
	Risk    []RiskKeyword `yaml:"risk"`
}

// DefaultRules returns the built-in rule table tuned for consumer
// terms-and-conditions documents.
func DefaultRules() Rules {
	return Rules{
		Clauses: []ClauseRule{
			{Category: "Data Collection", Phrases: []string{"collect", "personal data", "third party", "share your data", "cookies", "tracking"}},
			{Category: "Refunds", Phrases: []string{"refund", "cancel", "cancellation", "return", "chargeback"}},
			{Category: "Auto-Renewal", Phrases: []string{"auto-renew", "automatic renewal", "renewal"}},
			{Category: "Liability", Phrases: []string{"liab", "limitation of liability", "not liable", "indirect damages", "consequential"}},
			{Category: "Arbitration", Phrases: []string{"arbitration", "binding arbitration", "dispute resolution", "class action waiver"}},
			{Category: "Intellectual Property", Phrases: []string{"intellectual property", "copyright", "trademark", "license to use"}},
		},
		Risk: []RiskKeyword{
			{Phrase: "share your data", Weight: 3},
			{Phrase: "third party", Weight: 2},
			{Phrase: "binding arbitration", Weight: 3},
			{Phrase: "no refunds", Weight: 2},
			{Phrase: "automatic renewal", Weight: 2},
			{Phrase: "limitation of liability", Weight: 2},
			{Phrase: "class action waiver", Weight: 3},
		},
	}
}

// Validate rejects rule tables that would silently classify nothing.
func (r Rules) Validate() error {
	if len(r.Clauses) == 0 {
		return fmt.Errorf("rules must define at least one clause category")
	}
	seen := make(map[string]bool, len(r.Clauses))
	for _, c := range r.Clauses {
		if c.Category == "" {
			return fmt.Errorf("clause category name cannot be empty")
		}
		if seen[c.Category] {
			return fmt.Errorf("duplicate clause category %q", c.Category)
		}
		seen[c.Category] = true
		if len(c.Phrases) == 0 {
			return fmt.Errorf("clause category %q has no phrases", c.Category)
		}
		for _, p := range c.Phrases {
			if p == "" {
				return fmt.Errorf("clause category %q contains an empty phrase", c.Category)
			}
			if p != strings.ToLower(p) {
				return fmt.Errorf("clause phrase %q must be lowercase; matching lowercases the text, not the table", p)
			}
		}
	}
	for _, k := range r.Risk {
		if k.Phrase == "" {
			return fmt.Errorf("risk keyword phrase cannot be empty")
		}
		if k.Phrase != strings.ToLower(k.Phrase) {
			return fmt.Errorf("risk phrase %q must be lowercase; matching lowercases the text, not the table", k.Phrase)
		}
		if k.Weight <= 0 {
			return fmt.Errorf("risk keyword %q has non-positive weight %d", k.Phrase, k.Weight)
		}
	}
	return nil
}

// LoadRules returns the rule table. When RULES_FILE names a YAML file it is
// loaded and validated, replacing the built-in table entirely; otherwise
// the defaults apply. A broken override fails startup rather than silently
// degrading classification.
func LoadRules() (Rules, error) {
	path := os.Getenv("RULES_FILE")
	if path == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file %s: %w", path, err)
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return rules, nil
}
