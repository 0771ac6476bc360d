package entity

// RiskLevel is the coarse classification derived from the weighted
// keyword score over the full document.
type RiskLevel string

const (
	// RiskLow indicates few or no risk keywords were found.
	RiskLow RiskLevel = "low"
	// RiskMedium indicates a moderate weighted keyword score.
	RiskMedium RiskLevel = "medium"
	// RiskHigh indicates a high weighted keyword score.
	RiskHigh RiskLevel = "high"
)

// RiskAssessment is the result of scanning the full normalized text
// against the weighted risk keyword table.
type RiskAssessment struct {
	// Score is the sum of the weights of every keyword found at least
	// once. Each keyword contributes its weight at most once no matter
	// how often it occurs.
	Score int

	// Level is derived from Score via fixed thresholds.
	Level RiskLevel

	// Found lists the matched keywords in keyword-table order, not in
	// order of appearance in the text.
	Found []string
}

// ClauseMatch pairs a clause category with one matching paragraph.
// A category may hold several matches; identical paragraphs that re-appear
// in the source are recorded again rather than de-duplicated.
type ClauseMatch struct {
	Category  string
	Paragraph string
}
