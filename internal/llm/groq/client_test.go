package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGroq serves a canned chat/completions response and records the request.
func fakeGroq(t *testing.T, status int, content string, gotBody *map[string]any, gotAuth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		if gotAuth != nil {
			*gotAuth = r.Header.Get("Authorization")
		}
		if gotBody != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(gotBody))
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			resp := map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": content}},
				},
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		}
	}))
}

func TestAnalyze(t *testing.T) {
	content := `{"factors": ["smoking",], "risk": {"risk_level": "high", "score": 70,}, "recommendations": ["Quit smoking"],}`
	var body map[string]any
	var auth string
	srv := fakeGroq(t, http.StatusOK, content, &body, &auth)
	defer srv.Close()

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "llama-3.1-8b-instant", Temperature: 0.2}, nil)

	answers := []byte(`{"age": 55, "smoker": true}`)
	out, raw, err := c.Analyze(context.Background(), answers)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "llama-3.1-8b-instant", body["model"])
	assert.Equal(t, 0.2, body["temperature"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	prompt := msgs[0].(map[string]any)["content"].(string)
	assert.Contains(t, prompt, `"factors", "risk", and "recommendations"`)
	assert.Contains(t, prompt, string(answers))

	// trailing commas repaired before the payload is parsed
	assert.JSONEq(t, `["smoking"]`, string(out.Factors))
	assert.JSONEq(t, `{"risk_level": "high", "score": 70}`, string(out.Risk))
	assert.JSONEq(t, `["Quit smoking"]`, string(out.Recommendations))
	assert.JSONEq(t, `{"factors": ["smoking"], "risk": {"risk_level": "high", "score": 70}, "recommendations": ["Quit smoking"]}`, string(raw))
}

func TestAnalyze_InvalidPayload(t *testing.T) {
	srv := fakeGroq(t, http.StatusOK, `{"factors": "not an array"}`, nil, nil)
	defer srv.Close()

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.Analyze(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai analysis payload")
}

func TestAnalyze_EmptyChoicesFailsValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	// content defaults to "{}", which lacks the required keys
	_, _, err := c.Analyze(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai analysis payload")
}

func TestAnalyze_HTTPError(t *testing.T) {
	srv := fakeGroq(t, http.StatusInternalServerError, "", nil, nil)
	defer srv.Close()

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.Analyze(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq status 500")
}

func TestNewDefaults(t *testing.T) {
	c := New(Config{APIKey: "k"}, nil)
	assert.Equal(t, "https://api.groq.com/openai/v1", c.cfg.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", c.cfg.Model)
	assert.NotZero(t, c.cfg.Timeout)
}
