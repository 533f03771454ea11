package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripTrailingCommas(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object", `{"a": 1,}`, `{"a": 1}`},
		{"array", `[1, 2,]`, `[1, 2]`},
		{"comma then whitespace", "{\"a\": 1,\n  }", "{\"a\": 1\n  }"},
		{"nested", `{"a": [1,], "b": {"c": 2,},}`, `{"a": [1], "b": {"c": 2}}`},
		{"valid input untouched", `{"a": [1, 2], "b": "x,y"}`, `{"a": [1, 2], "b": "x,y"}`},
		{"empty", ``, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(StripTrailingCommas([]byte(tt.in))))
		})
	}
}

func TestParseAnalysisPayload(t *testing.T) {
	valid := `{
		"factors": ["smoking"],
		"risk": {"risk_level": "high", "score": 70},
		"recommendations": ["Quit smoking"]
	}`
	require.NoError(t, ParseAnalysisPayload([]byte(valid)))

	t.Run("risk shape is free-form", func(t *testing.T) {
		assert.NoError(t, ParseAnalysisPayload([]byte(`{"factors": [], "risk": "high", "recommendations": []}`)))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.Error(t, ParseAnalysisPayload([]byte(`{"factors": [], "risk": {}}`)))
	})

	t.Run("wrong type", func(t *testing.T) {
		assert.Error(t, ParseAnalysisPayload([]byte(`{"factors": "smoking", "risk": {}, "recommendations": []}`)))
	})

	t.Run("not json", func(t *testing.T) {
		assert.Error(t, ParseAnalysisPayload([]byte(`not json at all`)))
	})

	t.Run("repaired model output", func(t *testing.T) {
		raw := []byte(`{"factors": ["smoking",], "risk": {}, "recommendations": [],}`)
		assert.Error(t, ParseAnalysisPayload(raw))
		assert.NoError(t, ParseAnalysisPayload(StripTrailingCommas(raw)))
	})
}
