package survey

// BuildAnswersJSONSchema returns a JSON-Schema (draft 2020-12 subset) for a
// pre-structured answer set submitted directly, bypassing text extraction.
// Only the nine known fields are accepted.
func BuildAnswersJSONSchema() map[string]any {
	props := map[string]any{
		"age":    map[string]any{"type": "integer"},
		"smoker": map[string]any{"type": "boolean"},
	}
	for _, f := range []string{"exercise", "diet", "sleep", "stress", "alcohol", "weight", "height"} {
		props[f] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"minProperties":        1,
		"properties":           props,
	}
}
