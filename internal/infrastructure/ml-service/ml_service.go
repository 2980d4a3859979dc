package ml_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/cfg"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/jitter"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
	"github.com/narahe-ltd/recommendation-ai/pkg/retry"
)

// MLService — HTTP-клиент внешнего сервиса эмбеддингов.
type MLService struct {
	httpClient *http.Client
	cfg        *cfg.MLServiceCfg
	logger     logger.Logger
}

type encodeRequest struct {
	Texts []string `json:"texts"`
}

type encodeResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

func NewMLService(cfg *cfg.MLServiceCfg, logger logger.Logger) *MLService {
	return &MLService{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		cfg:        cfg,
		logger:     logger,
	}
}

// Embed векторизует текст профиля или описания продукта.
// Текст нормализуется перед отправкой: строка из одних пробелов
// кодируется так же, как пустая строка.
func (m *MLService) Embed(ctx context.Context, text string) ([]float32, error) {
	const (
		op         = "MLService.Embed"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	text = normalizeText(text)

	var vector []float32
	attempt := 0
	err := retry.Do(ctx, retry.Config{
		MaxAttempts: m.cfg.MaxRetries,
		Backoff:     retry.ExponentialWithJitter(baseJitter, maxJitter, jitter.DefaultJitter),
	}, func() error {
		attempt++
		v, err := m.encode(ctx, text)
		if err != nil {
			m.logger.Warnf("Embedding request failed (attempt %d/%d): %v", attempt, m.cfg.MaxRetries, err)
			return err
		}
		vector = v
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return vector, nil
}

// WaitReady блокирует старт до готовности эмбеддера. Исчерпание попыток
// возвращает e.ErrEmbedderUnavailable: без эмбеддера сервис бесполезен.
func (m *MLService) WaitReady(ctx context.Context) error {
	attempt := 0
	err := retry.Do(ctx, retry.Config{
		MaxAttempts: m.cfg.StartupRetries,
		Backoff:     retry.Fixed(m.cfg.StartupDelay),
	}, func() error {
		attempt++
		if _, err := m.encode(ctx, "ping"); err != nil {
			m.logger.Warnf("Embedding service not ready (attempt %d/%d): %v", attempt, m.cfg.StartupRetries, err)
			return err
		}
		return nil
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrEmbedderUnavailable)
	}

	m.logger.Infof("Embedding service is ready")
	return nil
}

func (m *MLService) encode(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(encodeRequest{Texts: []string{text}})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	url := m.cfg.Addr + "/encode"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, e.Wrap(whereami.WhereAmI(),
			fmt.Errorf("ml-service returned %d: %s", resp.StatusCode, string(data)))
	}

	var encoded encodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&encoded); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(encoded.Embeddings) == 0 || len(encoded.Embeddings[0]) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmptyVector)
	}

	return encoded.Embeddings[0], nil
}

// normalizeText сводит строку из одних пробельных символов к пустой строке.
// Внутренние пробелы сохраняются: они значимы для модели эмбеддингов.
func normalizeText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}
