package pipeline

import (
	"context"
	"log/slog"

	"health-risk-profiler/internal/rules"
	"health-risk-profiler/internal/survey"
)

// AnalysisSummary is the headline block of a full analysis.
type AnalysisSummary struct {
	RiskLevel  rules.RiskLevel `json:"risk_level"`
	RiskScore  int             `json:"risk_score"`
	KeyFactors []rules.Factor  `json:"key_factors"`
}

// AnalysisResults carries every stage's output for auditability.
type AnalysisResults struct {
	Parsing         survey.ParseResult         `json:"parsing"`
	Factors         rules.FactorResult         `json:"factors"`
	Risk            rules.RiskResult           `json:"risk"`
	Recommendations rules.RecommendationResult `json:"recommendations"`
}

// Analysis is the assembled outcome of the whole pipeline.
type Analysis struct {
	Status  survey.Status   `json:"status"`
	Summary AnalysisSummary `json:"summary"`
	Results AnalysisResults `json:"results"`
}

// Processor coordinates routing then the three rule engines.
type Processor struct {
	Logger *slog.Logger
	Router *Router
}

func NewProcessor(router *Router, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Router: router}
}

// Analyze runs the full pipeline. The ParseResult is always meaningful; the
// Analysis is non-nil only when parsing produced a usable answer set, so
// callers forward the ParseResult envelope for the other two variants.
func (p *Processor) Analyze(ctx context.Context, in Input) (survey.ParseResult, *Analysis, error) {
	parse, err := p.Router.Route(ctx, in)
	if err != nil {
		return parse, nil, err
	}
	if parse.Status != survey.StatusOK {
		p.Logger.Info("pipeline.analyze.not_ok", "status", string(parse.Status))
		return parse, nil, nil
	}

	factorResult := rules.ExtractFactors(*parse.Answers, p.Logger)
	riskResult := rules.ClassifyRisk(factorResult.Factors)
	recommendationResult := rules.GenerateRecommendations(riskResult.RiskLevel, factorResult.Factors)

	p.Logger.Info("pipeline.analyze.ok",
		"risk_level", string(riskResult.RiskLevel),
		"risk_score", riskResult.Score,
		"factors", len(factorResult.Factors),
		"confidence", factorResult.Confidence,
	)

	return parse, &Analysis{
		Status: survey.StatusOK,
		Summary: AnalysisSummary{
			RiskLevel:  riskResult.RiskLevel,
			RiskScore:  riskResult.Score,
			KeyFactors: factorResult.Factors,
		},
		Results: AnalysisResults{
			Parsing:         parse,
			Factors:         factorResult,
			Risk:            riskResult,
			Recommendations: recommendationResult,
		},
	}, nil
}
