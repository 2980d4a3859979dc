package queue

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/cfg"
	"github.com/narahe-ltd/recommendation-ai/pkg/clients"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

// UsageQueue читает сырые события использования из Redis-списка.
// Событие снимается с очереди до обработки, повторная доставка
// не выполняется: семантика at-most-once.
type UsageQueue struct {
	client *clients.RedisClient
	cfg    *cfg.QueueCfg
}

func NewUsageQueue(client *clients.RedisClient, cfg *cfg.QueueCfg) *UsageQueue {
	return &UsageQueue{
		client: client,
		cfg:    cfg,
	}
}

// Pop блокирующе снимает одно событие с очереди. Возвращает ok=false,
// если за PopTimeout ничего не пришло.
func (q *UsageQueue) Pop(ctx context.Context) (string, bool, error) {
	values, err := q.client.Client.BLPop(ctx, q.cfg.PopTimeout, q.cfg.QueueName).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, e.Wrap(whereami.WhereAmI(), err)
	}

	// BLPOP возвращает пару [ключ, значение]
	if len(values) < 2 {
		return "", false, nil
	}

	return values[1], true, nil
}

// Push кладёт сырое событие в очередь.
func (q *UsageQueue) Push(ctx context.Context, event string) error {
	if err := q.client.Client.LPush(ctx, q.cfg.QueueName, event).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Ping проверяет соединение с Redis очереди для health-check.
func (q *UsageQueue) Ping(ctx context.Context) error {
	if err := q.client.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
