package rules

import (
	"log/slog"
	"math"

	"health-risk-profiler/internal/survey"
)

// FactorResult lists the triggered factors in rule evaluation order plus the
// aggregate confidence: the 2-decimal mean of the triggered rules'
// confidences, 0 when nothing triggered.
type FactorResult struct {
	Factors    []Factor `json:"factors"`
	Confidence float64  `json:"confidence"`
}

// ExtractFactors evaluates every rule against the answer set. A rule whose
// predicate fails on malformed data is logged and skipped; it never aborts
// the remaining rules.
func ExtractFactors(answers survey.AnswerSet, logger *slog.Logger) FactorResult {
	if logger == nil {
		logger = slog.Default()
	}

	extracted := make([]Factor, 0, len(factorOrder))
	var confSum float64

	for _, factor := range factorOrder {
		rule := factorRules[factor]
		triggered, err := rule.Condition(answers)
		if err != nil {
			logger.Error("rules.factor.eval_error", "factor", string(factor), "error", err)
			continue
		}
		if triggered {
			extracted = append(extracted, factor)
			confSum += rule.Confidence
		}
	}

	confidence := 0.0
	if len(extracted) > 0 {
		confidence = round2(confSum / float64(len(extracted)))
	}

	return FactorResult{Factors: extracted, Confidence: confidence}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
