package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKResult_MissingFieldPolicy(t *testing.T) {
	t.Run("four missing is still ok", func(t *testing.T) {
		// age, smoker, diet, sleep, stress present; exercise, alcohol, weight, height missing
		answers := ParseAndNormalize("Age: 40\nSmoker: no\nDiet: balanced\nSleep: 7 hours\nStress: low")
		result := OKResult(answers, nil)

		assert.Equal(t, StatusOK, result.Status)
		assert.Len(t, result.MissingFields, 4)
		require.NotNil(t, result.Answers)
	})

	t.Run("five missing tips into incomplete", func(t *testing.T) {
		answers := ParseAndNormalize("Age: 40\nSmoker: no\nDiet: balanced\nSleep: 7 hours")
		result := OKResult(answers, nil)

		assert.Equal(t, StatusIncompleteProfile, result.Status)
		assert.Equal(t, ReasonTooManyMissing, result.Reason)
		assert.Len(t, result.MissingFields, 5)
		assert.Nil(t, result.Answers)
	})

	t.Run("single field", func(t *testing.T) {
		result := OKResult(ParseAndNormalize("Age: 30"), nil)

		assert.Equal(t, StatusIncompleteProfile, result.Status)
		assert.Len(t, result.MissingFields, 8)
	})
}

func TestMissingFields_PartitionExpectedFields(t *testing.T) {
	inputs := []string{
		"",
		"Age: 30",
		fullSurveyText,
		"Smoker: yes\nAlcohol: daily",
	}
	for _, text := range inputs {
		answers := ParseAndNormalize(text)
		missing := answers.MissingFields()

		present := make(map[string]bool)
		for _, f := range ExpectedFields {
			if answers.Has(f) {
				present[f] = true
			}
		}
		for _, f := range missing {
			assert.False(t, present[f], "field %q both present and missing", f)
		}
		assert.Equal(t, len(ExpectedFields), len(missing)+len(present))
	}
}

func TestParseResult_MarshalJSON(t *testing.T) {
	t.Run("ok variant", func(t *testing.T) {
		conf := 0.9
		result := OKResult(ParseAndNormalize(fullSurveyText), &conf)

		b, err := json.Marshal(result)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		assert.Equal(t, "ok", m["status"])
		assert.Contains(t, m, "answers")
		assert.Contains(t, m, "missing_fields")
		assert.Equal(t, 0.9, m["confidence"])
		assert.NotContains(t, m, "message")
	})

	t.Run("incomplete variant", func(t *testing.T) {
		result := OKResult(ParseAndNormalize("Age: 30"), nil)

		b, err := json.Marshal(result)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		assert.Equal(t, "incomplete_profile", m["status"])
		assert.Equal(t, ReasonTooManyMissing, m["reason"])
		assert.Contains(t, m, "missing_fields")
		assert.NotContains(t, m, "answers")
		assert.NotContains(t, m, "confidence")
	})

	t.Run("error variant", func(t *testing.T) {
		b, err := json.Marshal(ErrorResult("bad input"))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		assert.Equal(t, "error", m["status"])
		assert.Equal(t, "bad input", m["message"])
		assert.NotContains(t, m, "missing_fields")
	})
}
