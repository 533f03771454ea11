package llm

// BuildAnalysisJSONSchema returns the JSON-Schema (draft 2020-12 subset) the
// model's response must satisfy. Only the top-level contract is pinned down;
// the inner shapes are left to the model.
func BuildAnalysisJSONSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"factors", "risk", "recommendations"},
		"properties": map[string]any{
			"factors":         map[string]any{"type": "array"},
			"risk":            map[string]any{},
			"recommendations": map[string]any{"type": "array"},
		},
	}
}
