package llm

import (
	"health-risk-profiler/internal/common"
)

// ParseAnalysisPayload checks that a (repaired) model response is parseable
// JSON satisfying the analysis schema. A failure here is an AI-analysis
// failure; callers surface it as an external engine error.
func ParseAnalysisPayload(data []byte) error {
	return common.ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), data)
}
