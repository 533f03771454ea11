package llm

import (
	"context"
	"encoding/json"
)

// Analysis is the model's alternative health assessment. The three keys are
// required but their inner shape is model-defined, so they pass through raw.
type Analysis struct {
	Factors         json.RawMessage `json:"factors"`
	Risk            json.RawMessage `json:"risk"`
	Recommendations json.RawMessage `json:"recommendations"`
}

// Analyzer is the interface the AI analysis path depends on. answersJSON is
// the serialized canonical answer set.
type Analyzer interface {
	Analyze(ctx context.Context, answersJSON []byte) (Analysis, []byte /*rawJSON*/, error)
}
