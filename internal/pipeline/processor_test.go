package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-risk-profiler/internal/rules"
	"health-risk-profiler/internal/survey"
)

func TestAnalyze_FullSurveyText(t *testing.T) {
	p := NewProcessor(NewRouter(stubExtractor{}, nil), nil)

	parse, analysis, err := p.Analyze(context.Background(), Input{Text: surveyText})
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.Equal(t, survey.StatusOK, parse.Status)
	assert.Equal(t, survey.StatusOK, analysis.Status)

	// Every factor rule fires for this profile, so the score caps out.
	assert.Equal(t, rules.LevelHigh, analysis.Summary.RiskLevel)
	assert.Equal(t, 100, analysis.Summary.RiskScore)
	assert.Len(t, analysis.Summary.KeyFactors, len(rules.AllFactors()))

	assert.Equal(t, parse, analysis.Results.Parsing)
	assert.Equal(t, analysis.Summary.KeyFactors, analysis.Results.Factors.Factors)
	assert.Equal(t, rules.LevelHigh, analysis.Results.Recommendations.RiskLevel)
	assert.Contains(t, analysis.Results.Recommendations.Recommendations,
		"Given the high risk level, it is crucial to consult a healthcare professional for a comprehensive evaluation.")
}

func TestAnalyze_HealthyProfile(t *testing.T) {
	p := NewProcessor(NewRouter(stubExtractor{}, nil), nil)

	text := "Age: 28\nSmoker: no\nExercise: daily\nDiet: balanced\nSleep: 7-8 hours\nStress: low\nAlcohol: never\nWeight: 70kg\nHeight: 175cm"
	parse, analysis, err := p.Analyze(context.Background(), Input{Text: text})
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.Equal(t, survey.StatusOK, parse.Status)
	assert.Equal(t, rules.LevelLow, analysis.Summary.RiskLevel)
	assert.Equal(t, 0, analysis.Summary.RiskScore)
	assert.Empty(t, analysis.Summary.KeyFactors)
	assert.Equal(t, []string{
		"Continue to maintain your healthy lifestyle and schedule regular check-ups.",
	}, analysis.Results.Recommendations.Recommendations)
}

func TestAnalyze_IncompleteProfileSkipsEngines(t *testing.T) {
	p := NewProcessor(NewRouter(stubExtractor{}, nil), nil)

	parse, analysis, err := p.Analyze(context.Background(), Input{Text: "Age: 30"})
	require.NoError(t, err)

	assert.Nil(t, analysis)
	assert.Equal(t, survey.StatusIncompleteProfile, parse.Status)
	assert.Equal(t, survey.ReasonTooManyMissing, parse.Reason)
}

func TestAnalyze_NoInput(t *testing.T) {
	p := NewProcessor(NewRouter(stubExtractor{}, nil), nil)

	parse, analysis, err := p.Analyze(context.Background(), Input{})
	require.NoError(t, err)

	assert.Nil(t, analysis)
	assert.Equal(t, survey.StatusError, parse.Status)
	assert.Equal(t, ErrNoInput, parse.Message)
}
