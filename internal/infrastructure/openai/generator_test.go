package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/internal/cfg"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func testCfg(url string) *cfg.GeneratorCfg {
	return &cfg.GeneratorCfg{
		APIURL:         url,
		APIKey:         "test-key",
		Model:          "gpt-3.5-turbo",
		MaxTokens:      150,
		Temperature:    0.7,
		RequestTimeout: 2 * time.Second,
	}
}

func TestGenerator_Generate(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "generated text"}},
			},
		})
	}))
	defer srv.Close()

	gen := NewGenerator(testCfg(srv.URL), nopLogger{})

	text, err := gen.Generate(context.Background(), "explain these products")

	assert.Nil(t, err)
	assert.Equal(t, "generated text", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-3.5-turbo", gotReq.Model)
	assert.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, systemPrompt, gotReq.Messages[0].Content)
	assert.Equal(t, "explain these products", gotReq.Messages[1].Content)
}

func TestGenerator_Generate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	gen := NewGenerator(testCfg(srv.URL), nopLogger{})

	_, err := gen.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, e.ErrEmptyGeneration)
}

func TestGenerator_Generate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gen := NewGenerator(testCfg(srv.URL), nopLogger{})

	_, err := gen.Generate(context.Background(), "prompt")

	assert.NotNil(t, err)
}
