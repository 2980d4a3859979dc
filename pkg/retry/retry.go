// Package retry предоставляет переиспользуемую политику повторов:
// максимум попыток плюс функция отступления между ними.
// Одна и та же политика обслуживает и ожидание готовности эмбеддера,
// и обращения к генеративному API.
package retry

import (
	"context"
	"time"

	"github.com/narahe-ltd/recommendation-ai/pkg/jitter"
)

// BackoffFunc возвращает паузу после попытки attempt (нумерация с нуля).
type BackoffFunc func(attempt int) time.Duration

// Config описывает политику повторов.
type Config struct {
	// MaxAttempts — общее число попыток, включая первую.
	// Ноль и отрицательные значения трактуются как одна попытка.
	MaxAttempts int
	// Backoff — функция отступления. Nil означает отсутствие пауз.
	Backoff BackoffFunc
	// ShouldRetry позволяет классифицировать ошибки как неповторяемые.
	// Nil — повторяются все ошибки.
	ShouldRetry func(err error) bool
}

// Fixed — постоянная пауза между попытками.
func Fixed(d time.Duration) BackoffFunc {
	return func(int) time.Duration {
		return d
	}
}

// Exponential — пауза unit * 2^attempt: unit, 2*unit, 4*unit, ...
func Exponential(unit time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return unit << attempt
	}
}

// ExponentialWithJitter — экспоненциальное отступление со случайной добавкой,
// для сетевых вызовов, где повторы многих клиентов не должны совпадать.
func ExponentialWithJitter(base, max time.Duration, jitterFactor float64) BackoffFunc {
	return func(attempt int) time.Duration {
		return jitter.ExponentialBackoff(base, max, attempt, jitterFactor)
	}
}

// Do вызывает fn до cfg.MaxAttempts раз. Пауза Backoff(attempt) выдерживается
// после каждой неудачной попытки, в том числе после последней, перед тем как
// вернуть её ошибку. Отмена контекста прерывает ожидание и возвращает ошибку
// последней попытки либо ошибку контекста, если попыток ещё не было.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	shouldRetry := cfg.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = func(error) bool { return true }
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !shouldRetry(lastErr) {
			return lastErr
		}

		if cfg.Backoff != nil {
			select {
			case <-time.After(cfg.Backoff(attempt)):
			case <-ctx.Done():
				return lastErr
			}
		}
	}

	return lastErr
}
