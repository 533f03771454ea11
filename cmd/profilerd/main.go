package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"health-risk-profiler/internal/common"
	"health-risk-profiler/internal/extract"
	"health-risk-profiler/internal/llm"
	"health-risk-profiler/internal/llm/groq"
	"health-risk-profiler/internal/ocr"
	"health-risk-profiler/internal/pipeline"
	"health-risk-profiler/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	router := pipeline.NewRouter(extract.NewOCRAdapter(extractor, logger), logger)
	processor := pipeline.NewProcessor(router, logger)

	var analyzer llm.Analyzer
	if cfg.LLM.APIKey != "" {
		analyzer = groq.New(groq.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Warn("GROQ_API_KEY not set; AI analysis path disabled")
	}

	srv, err := server.New(*cfg, processor, analyzer, logger)
	if err != nil {
		logger.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("server.shutdown.start")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server.shutdown.failed", "error", err)
			os.Exit(1)
		}
		logger.Info("server.shutdown.done")
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
