package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"health-risk-profiler/internal/common"
	"health-risk-profiler/internal/llm"
	"health-risk-profiler/internal/pipeline"
)

// Server exposes the pipeline stages over HTTP. Every stage keeps its own
// endpoint so partial pipelines stay independently callable.
type Server struct {
	cfg        common.Config
	logger     *slog.Logger
	processor  *pipeline.Processor
	analyzer   llm.Analyzer // nil disables the AI analysis path
	router     chi.Router
	httpServer *http.Server
}

func New(cfg common.Config, processor *pipeline.Processor, analyzer llm.Analyzer, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return nil, common.WrapError(err, "create upload dir")
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		processor: processor,
		analyzer:  analyzer,
	}
	s.router = s.buildRouter()
	return s, nil
}

// Router returns the HTTP handler, exported so tests can drive it directly.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.Server.AllowAllCORS {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/", s.handleInfo)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/ai-analysis", s.handleAIAnalysis)
		r.Post("/parse", s.handleParse)
		r.Post("/factors", s.handleFactors)
		r.Post("/risk", s.handleRisk)
		r.Post("/recommendations", s.handleRecommendations)
	})

	return r
}

// ListenAndServe blocks serving HTTP on the configured address.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("server.listening", "addr", s.cfg.Server.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name": "Health Risk Profiler API",
		"endpoints": []string{
			"POST /health/analyze - Complete analysis",
			"POST /health/ai-analysis - Complete analysis using ai",
			"POST /health/parse - OCR parsing only",
			"POST /health/factors - Extract factors",
			"POST /health/risk - Classify risk",
			"POST /health/recommendations - Get recommendations",
		},
	})
}
