package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"health-risk-profiler/internal/common"
	"health-risk-profiler/internal/rules"
	"health-risk-profiler/internal/survey"
)

// handleAnalyze runs the full pipeline: route, normalize, factors, risk,
// recommendations, assembled into one response.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := s.requestInput(r)
	defer cleanup()
	if err != nil {
		s.respondFailure(w, err, msgAnalysisError)
		return
	}

	parse, analysis, err := s.processor.Analyze(r.Context(), in)
	if err != nil {
		s.respondFailure(w, err, msgAnalysisError)
		return
	}
	if analysis == nil {
		writeParseResult(w, parse)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// handleAIAnalysis routes and normalizes the input, then delegates the
// assessment to the external model instead of the rule engines.
func (s *Server) handleAIAnalysis(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := s.requestInput(r)
	defer cleanup()
	if err != nil {
		s.respondFailure(w, err, msgAIAnalysisError)
		return
	}
	if s.analyzer == nil {
		writeError(w, http.StatusInternalServerError, msgAIAnalysisError)
		return
	}

	parse, err := s.processor.Router.Route(r.Context(), in)
	if err != nil {
		s.respondFailure(w, err, msgAIAnalysisError)
		return
	}
	if parse.Status != survey.StatusOK {
		writeParseResult(w, parse)
		return
	}

	answersJSON, err := json.Marshal(parse.Answers)
	if err != nil {
		s.respondFailure(w, err, msgAIAnalysisError)
		return
	}
	analysis, _, err := s.analyzer.Analyze(r.Context(), answersJSON)
	if err != nil {
		s.logger.Error("server.ai_analysis.failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgAIAnalysisError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":          survey.StatusOK,
		"factors":         analysis.Factors,
		"risk":            analysis.Risk,
		"recommendations": analysis.Recommendations,
	})
}

// handleParse exposes the routing + normalization stage on its own.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := s.requestInput(r)
	defer cleanup()
	if err != nil {
		s.respondFailure(w, err, msgInternalError)
		return
	}

	result, err := s.processor.Router.Route(r.Context(), in)
	if err != nil {
		s.respondFailure(w, err, msgInternalError)
		return
	}
	writeParseResult(w, result)
}

// handleFactors evaluates the factor rules against a pre-structured answer
// set, validated against the nine-field schema.
func (s *Server) handleFactors(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answers json.RawMessage `json:"answers"`
	}
	if err := decodeBody(r, &body); err != nil || len(body.Answers) == 0 {
		writeError(w, http.StatusBadRequest, `Request body must contain a non-empty "answers" object.`)
		return
	}
	if err := common.ValidateJSONAgainstSchema(survey.BuildAnswersJSONSchema(), body.Answers); err != nil {
		s.logger.Warn("server.factors.invalid_answers", "error", err)
		writeError(w, http.StatusBadRequest, `Request body must contain a non-empty "answers" object.`)
		return
	}

	var answers survey.AnswerSet
	if err := json.Unmarshal(body.Answers, &answers); err != nil {
		writeError(w, http.StatusBadRequest, `Request body must contain a non-empty "answers" object.`)
		return
	}

	writeJSON(w, http.StatusOK, rules.ExtractFactors(answers, s.logger))
}

// handleRisk maps a factor list to a score and tier.
func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Factors *[]rules.Factor `json:"factors"`
	}
	if err := decodeBody(r, &body); err != nil || body.Factors == nil {
		writeError(w, http.StatusBadRequest, `Request body must contain a "factors" array.`)
		return
	}

	// No factors is a valid request; answer without consulting the engine.
	if len(*body.Factors) == 0 {
		writeJSON(w, http.StatusOK, rules.RiskResult{
			RiskLevel: rules.LevelLow,
			Score:     0,
			Rationale: []string{"No risk factors provided."},
		})
		return
	}

	writeJSON(w, http.StatusOK, rules.ClassifyRisk(*body.Factors))
}

// handleRecommendations maps a risk tier plus factors to guidance strings.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RiskLevel string          `json:"risk_level"`
		Factors   *[]rules.Factor `json:"factors"`
	}
	if err := decodeBody(r, &body); err != nil || body.RiskLevel == "" {
		writeError(w, http.StatusBadRequest, `Request body must contain a "risk_level" string.`)
		return
	}
	if body.Factors == nil {
		writeError(w, http.StatusBadRequest, `Request body must contain a "factors" array.`)
		return
	}

	result := rules.GenerateRecommendations(rules.RiskLevel(body.RiskLevel), *body.Factors)
	writeJSON(w, http.StatusOK, result)
}

// respondFailure converts an error into its envelope: validation failures
// carry their message, everything else collapses to the fixed internal one.
func (s *Server) respondFailure(w http.ResponseWriter, err error, internalMsg string) {
	status := common.HTTPStatus(err)
	if status == http.StatusBadRequest {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			writeError(w, status, appErr.Message)
			return
		}
		writeError(w, status, "invalid request")
		return
	}
	s.logger.Error("server.request.failed", "error", err)
	writeError(w, status, internalMsg)
}

func decodeBody(r *http.Request, v any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	return json.NewDecoder(r.Body).Decode(v)
}
