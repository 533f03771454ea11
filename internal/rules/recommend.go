package rules

// General statements keyed by risk tier.
const (
	recHighRisk    = "Given the high risk level, it is crucial to consult a healthcare professional for a comprehensive evaluation."
	recMediumRisk  = "Regular monitoring and consistent lifestyle improvements are recommended."
	recMaintenance = "Continue to maintain your healthy lifestyle and schedule regular check-ups."
)

// RecommendationResult echoes its inputs and adds a deduplicated,
// insertion-ordered list of guidance strings.
type RecommendationResult struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	Factors         []Factor  `json:"factors"`
	Recommendations []string  `json:"recommendations"`
}

// GenerateRecommendations collects one recommendation per matched factor,
// then exactly one statement for the risk tier. Low risk adds the
// maintenance statement only when nothing else was collected. The risk level
// is assumed to come from ClassifyRisk's fixed tier set.
func GenerateRecommendations(riskLevel RiskLevel, factors []Factor) RecommendationResult {
	if factors == nil {
		factors = []Factor{}
	}
	recommendations := make([]string, 0, len(factors)+1)
	seen := make(map[string]struct{}, len(factors)+1)
	add := func(rec string) {
		if _, dup := seen[rec]; dup {
			return
		}
		seen[rec] = struct{}{}
		recommendations = append(recommendations, rec)
	}

	for _, factor := range factors {
		if rule, ok := factorRules[factor]; ok && rule.Recommendation != "" {
			add(rule.Recommendation)
		}
	}

	switch riskLevel {
	case LevelHigh:
		add(recHighRisk)
	case LevelMedium:
		add(recMediumRisk)
	default:
		if len(recommendations) == 0 {
			add(recMaintenance)
		}
	}

	return RecommendationResult{
		RiskLevel:       riskLevel,
		Factors:         factors,
		Recommendations: recommendations,
	}
}
