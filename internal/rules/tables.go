package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"health-risk-profiler/internal/survey"
)

// Factor identifies one of the fixed named health-risk indicators.
type Factor string

const (
	Smoking          Factor = "smoking"
	PoorDiet         Factor = "poor diet"
	LowExercise      Factor = "low exercise"
	AgeRisk          Factor = "age risk"
	PoorSleep        Factor = "poor sleep"
	HighStress       Factor = "high stress"
	ExcessiveAlcohol Factor = "excessive alcohol"
	ObesityRisk      Factor = "obesity risk"
)

// factorOrder fixes rule evaluation (and therefore output) order.
var factorOrder = []Factor{
	Smoking,
	PoorDiet,
	LowExercise,
	AgeRisk,
	PoorSleep,
	HighStress,
	ExcessiveAlcohol,
	ObesityRisk,
}

// AllFactors returns the closed factor vocabulary in evaluation order.
func AllFactors() []Factor {
	out := make([]Factor, len(factorOrder))
	copy(out, factorOrder)
	return out
}

// Rule bundles everything the engines know about one factor: the trigger
// predicate, its reliability, its scoring weight, the rationale shown when it
// scores, and the guidance it maps to. All static configuration data.
type Rule struct {
	Condition      func(survey.AnswerSet) (bool, error)
	Confidence     float64
	Weight         int
	Rationale      string
	Recommendation string
}

var (
	reFirstInt     = regexp.MustCompile(`\d+`)
	reFirstDecimal = regexp.MustCompile(`[\d.]+`)
)

// factorRules is the single source of truth keyed by the factor vocabulary.
// Predicates are written to fail soft: malformed field data yields an error
// that the evaluation loop records as "not triggered".
var factorRules = map[Factor]Rule{
	Smoking: {
		Condition: func(a survey.AnswerSet) (bool, error) {
			return a.Smoker != nil && *a.Smoker, nil
		},
		Confidence:     0.95,
		Weight:         25,
		Rationale:      "Tobacco use is a major contributor to health risk.",
		Recommendation: "Consider smoking cessation programs or consult a healthcare provider for support.",
	},
	PoorDiet: {
		Condition: func(a survey.AnswerSet) (bool, error) {
			diet := strings.ToLower(a.Diet)
			return strings.Contains(diet, "high sugar") ||
				strings.Contains(diet, "high fat") ||
				strings.Contains(diet, "processed"), nil
		},
		Confidence:     0.90,
		Weight:         20,
		Rationale:      "A diet high in processed foods, fat, or sugar increases health risks.",
		Recommendation: "Incorporate more fruits, vegetables, and whole grains into your diet. Reduce processed foods.",
	},
	LowExercise: {
		Condition: func(a survey.AnswerSet) (bool, error) {
			exercise := strings.ToLower(a.Exercise)
			return strings.Contains(exercise, "rarely") || strings.Contains(exercise, "never"), nil
		},
		Confidence:     0.88,
		Weight:         18,
		Rationale:      "A sedentary lifestyle is a significant health risk factor.",
		Recommendation: "Aim for at least 30 minutes of moderate physical activity, like brisk walking, most days of the week.",
	},
	AgeRisk: {
		Condition: func(a survey.AnswerSet) (bool, error) {
			return a.Age != nil && *a.Age > 50, nil
		},
		Confidence:     0.85,
		Weight:         15,
		Rationale:      "Age over 50 is a non-modifiable risk factor.",
		Recommendation: "Schedule regular preventive health check-ups with your doctor.",
	},
	PoorSleep: {
		Condition: func(a survey.AnswerSet) (bool, error) {
			if a.Sleep == "" {
				return false, nil
			}
			tok := reFirstInt.FindString(a.Sleep)
			if tok == "" {
				return false, nil
			}
			hours, err := strconv.Atoi(tok)
			if err != nil {
				return false, fmt.Errorf("parse sleep hours %q: %w", tok, err)
			}
			return hours < 6, nil
		},
		Confidence:     0.82,
		Weight:         10,
		Rationale:      "Lack of adequate sleep can impact overall health.",
		Recommendation: "Establish a regular sleep schedule and aim for 7-9 hours of quality sleep per night.",
	},
	HighStress: {
		Condition: func(a survey.AnswerSet) (bool, error) {
			stress := strings.ToLower(a.Stress)
			return strings.Contains(stress, "high") || stress == "4" || stress == "5", nil
		},
		Confidence:     0.85,
		Weight:         12,
		Rationale:      "Chronic high stress levels negatively affect health.",
		Recommendation: "Practice stress-reduction techniques such as mindfulness, meditation, or yoga.",
	},
	ExcessiveAlcohol: {
		Condition: func(a survey.AnswerSet) (bool, error) {
			alcohol := strings.ToLower(a.Alcohol)
			return strings.Contains(alcohol, "daily") || strings.Contains(alcohol, "heavy"), nil
		},
		Confidence:     0.88,
		Weight:         15,
		Rationale:      "Excessive alcohol consumption is a known health risk.",
		Recommendation: "Reduce alcohol intake to moderate levels as defined by health guidelines.",
	},
	ObesityRisk: {
		// Simplified check, not a BMI calculation: a high numeric weight
		// (assumed kilograms) or an explicit mention of "obese".
		Condition: func(a survey.AnswerSet) (bool, error) {
			if a.Weight == "" {
				return false, nil
			}
			weight := strings.ToLower(a.Weight)
			if strings.Contains(weight, "obese") {
				return true, nil
			}
			tok := reFirstDecimal.FindString(weight)
			if tok == "" {
				return false, nil
			}
			kg, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return false, fmt.Errorf("parse weight %q: %w", tok, err)
			}
			return kg > 100, nil
		},
		Confidence:     0.70,
		Weight:         20,
		Rationale:      "Obesity is linked to a variety of chronic diseases.",
		Recommendation: "Consult with a healthcare provider or a registered dietitian to create a healthy weight management plan.",
	},
}
