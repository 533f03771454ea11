package server

import (
	"encoding/json"
	"net/http"

	"health-risk-profiler/internal/survey"
)

// Fixed categorical messages; raw failure internals never reach callers.
const (
	msgInternalError   = "An internal server error occurred."
	msgAnalysisError   = "An internal server error occurred during the analysis."
	msgAIAnalysisError = "An internal server error occurred during the AI analysis."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"status":  string(survey.StatusError),
		"message": message,
	})
}

// writeParseResult applies the outcome-to-status mapping shared by all
// routes that forward a ParseResult: error is a 4xx-equivalent, while an
// incomplete profile is a first-class 200 outcome.
func writeParseResult(w http.ResponseWriter, result survey.ParseResult) {
	status := http.StatusOK
	if result.Status == survey.StatusError {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}
