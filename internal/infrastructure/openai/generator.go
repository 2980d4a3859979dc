package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/cfg"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

const systemPrompt = "You are a helpful banking assistant."

// Generator — клиент chat-completions API для генерации объяснений.
// Повторами управляет вызывающая сторона, клиент выполняет один запрос.
type Generator struct {
	httpClient *http.Client
	cfg        *cfg.GeneratorCfg
	logger     logger.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewGenerator(cfg *cfg.GeneratorCfg, logger logger.Logger) *Generator {
	return &Generator{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		cfg:        cfg,
		logger:     logger,
	}
}

// Generate выполняет один запрос к генеративной модели.
// Пустой ответ модели считается ошибкой e.ErrEmptyGeneration.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", e.Wrap(whereami.WhereAmI(),
			fmt.Errorf("generation API returned %d: %s", resp.StatusCode, string(data)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	if len(parsed.Choices) == 0 {
		return "", e.Wrap(whereami.WhereAmI(), e.ErrEmptyGeneration)
	}

	return parsed.Choices[0].Message.Content, nil
}
