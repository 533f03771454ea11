package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: image file -> raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Confidence float64 // engine self-reported, 0..100
	Language   string
	Duration   time.Duration
	Warnings   []string
}
