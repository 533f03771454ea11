package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"health-risk-profiler/internal/common"
	"health-risk-profiler/internal/extract"
	"health-risk-profiler/internal/ocr"
	"health-risk-profiler/internal/pipeline"
	"health-risk-profiler/internal/survey"
)

// Runs the full pipeline on one input and prints the analysis JSON.
// The argument is an image path (OCR) or a text file (direct normalization).
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runanalysis <image-or-text-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
	router := pipeline.NewRouter(extract.NewOCRAdapter(extractor, logger), logger)
	processor := pipeline.NewProcessor(router, logger)

	in, err := inputFromPath(path)
	if err != nil {
		logger.Error("read input", "path", path, "error", err)
		os.Exit(1)
	}

	parse, analysis, err := processor.Analyze(ctx, in)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if analysis == nil {
		_ = enc.Encode(parse)
		if parse.Status == survey.StatusError {
			os.Exit(1)
		}
		return
	}
	_ = enc.Encode(analysis)
}

func inputFromPath(path string) (pipeline.Input, error) {
	ext := ocr.NormalizeExt(filepath.Ext(path))
	if _, ok := ocr.AllowedExtensions[ext]; ok {
		return pipeline.Input{ImagePath: path}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Input{}, err
	}
	return pipeline.Input{Text: string(b)}, nil
}
