package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
	"github.com/narahe-ltd/recommendation-ai/pkg/retry"
)

// FallbackExplanation возвращается, когда генеративный API недоступен
// после всех попыток.
const FallbackExplanation = "Sorry, I couldn't generate a detailed explanation at this time."

// Explainer строит текстовое объяснение подборки продуктов через внешний
// генеративный API. Результаты кэшируются по отпечатку профиля и подборки;
// ошибки API никогда не поднимаются к вызывающему.
type Explainer struct {
	cacheRepo   CacheRepository
	generator   GeneratorInfra
	logger      logger.Logger
	maxAttempts int
	backoffUnit time.Duration
}

func NewExplainer(
	cacheRepo CacheRepository,
	generator GeneratorInfra,
	logger logger.Logger,
	maxAttempts int,
	backoffUnit time.Duration,
) *Explainer {
	return &Explainer{
		cacheRepo:   cacheRepo,
		generator:   generator,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffUnit: backoffUnit,
	}
}

// Explain возвращает объяснение подборки: из кэша, от генеративного API
// с повторами и экспоненциальным отступлением, либо фиксированный fallback.
func (x *Explainer) Explain(ctx context.Context, profile *CustomerProfile, recs []Recommendation) string {
	fp := Fingerprint(profile, recs)

	cached, err := x.cacheRepo.GetExplanation(ctx, fp)
	if err != nil {
		x.logger.Warnf("explanation cache lookup failed: %v", err)
	} else if cached != "" {
		x.logger.Debugf("explanation cache hit for fingerprint %s", fp)
		return cached
	}

	prompt := buildPrompt(profile, recs)

	var text string
	err = retry.Do(ctx, retry.Config{
		MaxAttempts: x.maxAttempts,
		Backoff:     retry.Exponential(x.backoffUnit),
	}, func() error {
		out, genErr := x.generator.Generate(ctx, prompt)
		if genErr != nil {
			return genErr
		}
		if strings.TrimSpace(out) == "" {
			return e.ErrEmptyGeneration
		}

		text = strings.TrimSpace(out)
		return nil
	})
	if err != nil {
		x.logger.Errorf(err, "explanation generation failed after %d attempts", x.maxAttempts)
		return FallbackExplanation
	}

	if err := x.cacheRepo.SetExplanation(ctx, fp, text); err != nil {
		x.logger.Warnf("failed to cache explanation: %v", err)
	}

	return text
}

// Fingerprint — sha256-отпечаток пары (профиль, упорядоченная подборка),
// ключ кэша объяснений.
func Fingerprint(profile *CustomerProfile, recs []Recommendation) string {
	h := sha256.New()
	for _, action := range profile.TransactionHistory {
		h.Write([]byte(action))
		h.Write([]byte{0x1f})
	}
	h.Write([]byte(profile.Preferences))
	h.Write([]byte{0x1e})
	for _, rec := range recs {
		h.Write([]byte(rec.ProductID))
		h.Write([]byte{0x1f})
		h.Write([]byte(rec.Description))
		h.Write([]byte{0x1f})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// buildPrompt собирает промпт в формате, который ожидает генеративный API.
func buildPrompt(profile *CustomerProfile, recs []Recommendation) string {
	products := make([]string, 0, len(recs))
	for _, rec := range recs {
		products = append(products, fmt.Sprintf("- %s: %s", rec.ProductID, rec.Description))
	}

	return fmt.Sprintf(
		"Customer Profile:\n"+
			"Transaction History: %s\n"+
			"Preferences: %s\n\n"+
			"Recommended Products:\n%s\n\n"+
			"Explain in a concise, friendly tone why these products are suitable for this customer.",
		strings.Join(profile.TransactionHistory, "; "),
		profile.Preferences,
		strings.Join(products, "\n"),
	)
}
