package analyze

import (
	"strings"

	"clausescan/internal/domain/entity"
)

// Risk level thresholds over the summed keyword weights.
const (
	highRiskThreshold   = 6
	mediumRiskThreshold = 3
)

// ScoreRisk scans the normalized document text against the weighted risk
// keyword table. Each keyword contributes its weight at most once no
// matter how often it appears; Found lists matched keywords in table
// order. Matching is case-insensitive substring containment.
func ScoreRisk(rules Rules, text string) entity.RiskAssessment {
	lower := strings.ToLower(text)

	score := 0
	var found []string
	for _, kw := range rules.Risk {
		if strings.Contains(lower, kw.Phrase) {
			score += kw.Weight
			found = append(found, kw.Phrase)
		}
	}

	level := entity.RiskLow
	switch {
	case score >= highRiskThreshold:
		level = entity.RiskHigh
	case score >= mediumRiskThreshold:
		level = entity.RiskMedium
	}

	return entity.RiskAssessment{Score: score, Level: level, Found: found}
}
