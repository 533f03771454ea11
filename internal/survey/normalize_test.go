package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSurveyText = "Age: 55\nSmoker: yes\nExercise: rarely\nDiet: high sugar diet\nSleep: 5 hours\nStress: high\nAlcohol: daily\nWeight: 110kg\nHeight: 170cm"

func TestParseAndNormalize_FullSurvey(t *testing.T) {
	answers := ParseAndNormalize(fullSurveyText)

	require.NotNil(t, answers.Age)
	assert.Equal(t, 55, *answers.Age)
	require.NotNil(t, answers.Smoker)
	assert.True(t, *answers.Smoker)
	assert.Contains(t, answers.Exercise, "rarely")
	assert.Equal(t, "high sugar", answers.Diet)
	assert.Equal(t, "5 hours", answers.Sleep)
	assert.Equal(t, "high", answers.Stress)
	assert.Equal(t, "daily", answers.Alcohol)
	assert.Contains(t, answers.Weight, "110kg")
	assert.Equal(t, "170cm", answers.Height)

	assert.Empty(t, answers.MissingFields())
}

func TestParseAndNormalize_Smoker(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"yes", "Smoker: yes", true},
		{"true", "smoker true", true},
		{"y", "Smoker: y", true},
		{"no", "Smoker: no", false},
		{"false", "smoker: false", false},
		{"n", "Smoker: n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := ParseAndNormalize(tt.text)
			require.NotNil(t, answers.Smoker)
			assert.Equal(t, tt.want, *answers.Smoker)
		})
	}
}

func TestParseAndNormalize_DietCanonicalization(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"sugar keyword", "Diet: lots of sugar snacks", "high sugar"},
		{"balanced keyword", "Diet: mostly balanced meals", "balanced"},
		{"free text passes through", "Diet: vegetarian", "vegetarian"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := ParseAndNormalize(tt.text)
			assert.Equal(t, tt.want, answers.Diet)
		})
	}
}

func TestParseAndNormalize_SleepToken(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hours token", "Sleep: about 5 hours per night", "5 hours"},
		{"range token", "Sleep: 6-7 hours", "6-7 hours"},
		{"singular hour", "Sleep: 1 hour", "1 hour"},
		{"no token keeps sanitized text", "Sleep: badly", "badly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := ParseAndNormalize(tt.text)
			assert.Equal(t, tt.want, answers.Sleep)
		})
	}
}

func TestParseAndNormalize_StressToken(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"level word", "Stress: very high lately", "high"},
		{"numeric rating", "Stress: 4 out of 5", "4"},
		{"free text", "Stress: okay", "okay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := ParseAndNormalize(tt.text)
			assert.Equal(t, tt.want, answers.Stress)
		})
	}
}

func TestParseAndNormalize_AlcoholOCRFix(t *testing.T) {
	answers := ParseAndNormalize("Alcohol: twice a veek")
	assert.Equal(t, "twice a week", answers.Alcohol)
}

func TestParseAndNormalize_FieldsAreIndependent(t *testing.T) {
	// unrelated lines between fields, fields out of canonical order
	text := "some header garbage\nWeight: 80kg\nignore this line\nAGE 42\nSmoker no"
	answers := ParseAndNormalize(text)

	require.NotNil(t, answers.Age)
	assert.Equal(t, 42, *answers.Age)
	require.NotNil(t, answers.Smoker)
	assert.False(t, *answers.Smoker)
	assert.Equal(t, "80kg", answers.Weight)
	assert.Empty(t, answers.Diet)
}

func TestParseAndNormalize_MissingLabelsStayUnset(t *testing.T) {
	answers := ParseAndNormalize("completely unrelated text")
	assert.Nil(t, answers.Age)
	assert.Nil(t, answers.Smoker)
	assert.ElementsMatch(t, ExpectedFields, answers.MissingFields())
}

func TestSanitizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"keeps allowed punctuation", "7-8 (per week), & more", "7-8 (per week), & more"},
		{"strips noise characters", "da*ily #wine!", "daily wine"},
		{"trims after stripping", "  value* ", "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeValue(tt.in))
		})
	}
}
