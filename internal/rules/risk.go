package rules

import "fmt"

// RiskLevel is the discrete classification derived from the numeric score.
type RiskLevel string

const (
	LevelLow    RiskLevel = "low"
	LevelMedium RiskLevel = "medium"
	LevelHigh   RiskLevel = "high"
)

const maxScore = 100

// RiskResult carries the capped weight sum, its tier, and one explanation per
// scored factor in input order.
type RiskResult struct {
	RiskLevel RiskLevel `json:"risk_level"`
	Score     int       `json:"score"`
	Rationale []string  `json:"rationale"`
}

// ClassifyRisk maps a factor list to a weighted score and tier. Factors
// outside the known vocabulary contribute nothing. An empty list is valid and
// classifies as low with an empty rationale.
func ClassifyRisk(factors []Factor) RiskResult {
	score := 0
	rationale := make([]string, 0, len(factors))

	for _, factor := range factors {
		rule, known := factorRules[factor]
		if !known || rule.Weight == 0 {
			continue
		}
		score += rule.Weight
		if rule.Rationale != "" {
			rationale = append(rationale, rule.Rationale)
		} else {
			rationale = append(rationale, fmt.Sprintf("The factor %q contributes to overall risk.", string(factor)))
		}
	}

	if score > maxScore {
		score = maxScore
	}

	var level RiskLevel
	switch {
	case score > 60:
		level = LevelHigh
	case score > 30:
		level = LevelMedium
	default:
		level = LevelLow
	}

	return RiskResult{RiskLevel: level, Score: score, Rationale: rationale}
}
