package pipeline

import (
	"context"
	"log/slog"
	"math"

	"health-risk-profiler/internal/common"
	"health-risk-profiler/internal/extract"
	"health-risk-profiler/internal/survey"
)

// ErrNoInput is the fixed caller-visible message for requests carrying
// neither an image nor usable text.
const ErrNoInput = "Request must contain an image file or a valid text body."

// Input is what the request boundary hands the router. ImagePath wins over
// Text; a request with neither routes to the error variant.
type Input struct {
	ImagePath string // path to an uploaded image file, "" if none
	Text      string // from a JSON {"text": ...} field or a plain-text body
}

// Router selects the extraction path for a request and forwards the
// normalizer's outcome. It interprets no AnswerSet semantics itself.
type Router struct {
	Logger    *slog.Logger
	Extractor extract.TextExtractor
}

func NewRouter(tx extract.TextExtractor, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{Logger: logger, Extractor: tx}
}

// Route dispatches the input to OCR + normalization or straight to
// normalization. A non-nil error means the OCR engine failed; everything else
// is expressed as a ParseResult variant.
func (r *Router) Route(ctx context.Context, in Input) (survey.ParseResult, error) {
	if in.ImagePath != "" {
		res, err := r.Extractor.Extract(ctx, in.ImagePath)
		if err != nil {
			r.Logger.Error("pipeline.route.ocr_failed", "path", in.ImagePath, "error", err)
			return survey.ParseResult{}, common.EngineError("Failed to process image with OCR.", err)
		}
		conf := overallConfidence(res.Confidence)
		r.Logger.Info("pipeline.route.ocr_ok",
			"path", in.ImagePath,
			"text_bytes", len(res.Text),
			"engine_confidence", res.Confidence,
			"confidence", conf,
		)
		answers := survey.ParseAndNormalize(res.Text)
		return survey.OKResult(answers, &conf), nil
	}

	if in.Text != "" {
		answers := survey.ParseAndNormalize(in.Text)
		return survey.OKResult(answers, nil), nil
	}

	return survey.ErrorResult(ErrNoInput), nil
}

// overallConfidence maps the engine's 0..100 self-reported confidence onto
// the 0..1 figure attached to parse results. The flat 0.9 above 80 is a
// long-standing heuristic; downstream consumers depend on the exact
// thresholds, so it stays as-is.
func overallConfidence(engineConf float64) float64 {
	if engineConf > 80 {
		return 0.9
	}
	return math.Round(engineConf) / 100
}
