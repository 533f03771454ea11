package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"health-risk-profiler/internal/llm"
)

const promptHeader = `Based on the following health data, generate a JSON response with risk factors, a risk score, and recommendations. The JSON object should have three keys: "factors", "risk", and "recommendations".`

// Analyze implements llm.Analyzer over chat/completions. The model's content
// is repaired for trailing commas, then validated against the analysis
// schema before being trusted.
func (c *Client) Analyze(ctx context.Context, answersJSON []byte) (llm.Analysis, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"answers_bytes", len(answersJSON),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": promptHeader + "\nData:\n" + string(answersJSON) + "\n"},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.analyze.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Analysis{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.analyze.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Analysis{}, raw, fmt.Errorf("decode groq response: %w", err)
	}
	content := "{}"
	if len(cc.Choices) > 0 && strings.TrimSpace(cc.Choices[0].Message.Content) != "" {
		content = strings.TrimSpace(cc.Choices[0].Message.Content)
	}

	cleaned := llm.StripTrailingCommas([]byte(content))
	if err := llm.ParseAnalysisPayload(cleaned); err != nil {
		c.log.Error("llm.analyze.invalid_payload",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Analysis{}, cleaned, fmt.Errorf("ai analysis payload: %w", err)
	}

	var out llm.Analysis
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return llm.Analysis{}, cleaned, fmt.Errorf("unmarshal analysis: %w", err)
	}

	c.log.Info("llm.analyze.ok",
		"req_id", rid,
		"raw_bytes", len(cleaned),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("groq http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("groq response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("groq status %d: %s", resp.StatusCode, raw)
	}
	return raw, nil
}
