package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/tr"
)

// UsageLogRepo пишет журнал входящих событий использования.
type UsageLogRepo struct {
	pool *pgxpool.Pool
}

func NewUsageLogRepo(pool *pgxpool.Pool) *UsageLogRepo {
	return &UsageLogRepo{
		pool: pool,
	}
}

// Append добавляет событие в журнал. Журнал ведётся для всех событий,
// включая события по неизвестным клиентам.
func (u *UsageLogRepo) Append(ctx context.Context, event *domain.UsageEvent) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO usage_logs (customer_id, action, created_at)
		VALUES ($1, $2, $3);
	`

	_, err = tx.Exec(ctx, query, event.CustomerID, event.Action, event.Timestamp)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
