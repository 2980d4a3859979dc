package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/internal/repository/pgdb/converter"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/tr"
)

// CustomerRepo реализует репозиторий клиентов поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{
		pool: pool,
		conv: conv,
	}
}

// GetByID возвращает профиль клиента вместе с кэшированным эмбеддингом.
func (c *CustomerRepo) GetByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT id, transaction_history, preferences, embedding
		FROM customers
		WHERE id = $1;
	`

	var model converter.CustomerModel
	err := c.pool.QueryRow(ctx, query, customerID).
		Scan(&model.ID, &model.TransactionHistory, &model.Preferences, &model.Embedding)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCustomerNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// AppendAction дописывает действие в историю клиента и одновременно
// сбрасывает эмбеддинг в NULL. Оба изменения выполняются одним UPDATE,
// частичное применение невозможно. Возвращает false, если клиент не найден.
func (c *CustomerRepo) AppendAction(ctx context.Context, customerID, action string) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE customers
		SET transaction_history = array_append(transaction_history, $2),
		    embedding = NULL,
		    updated_at = NOW()
		WHERE id = $1;
	`

	tag, err := tx.Exec(ctx, query, customerID, action)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListIDs возвращает до limit идентификаторов клиентов в порядке id.
func (c *CustomerRepo) ListIDs(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT id
		FROM customers
		ORDER BY id
		LIMIT $1;
	`

	rows, err := c.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return ids, nil
}

// FilterKnown возвращает подмножество ids, существующих в базе,
// в порядке id.
func (c *CustomerRepo) FilterKnown(ctx context.Context, ids []string) ([]string, error) {
	query := `
		SELECT id
		FROM customers
		WHERE id = ANY($1)
		ORDER BY id;
	`

	rows, err := c.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	known, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return known, nil
}

// SetEmbedding сохраняет пересчитанный эмбеддинг профиля клиента.
func (c *CustomerRepo) SetEmbedding(ctx context.Context, customerID string, embedding []float32) error {
	query := `
		UPDATE customers
		SET embedding = $2,
		    updated_at = NOW()
		WHERE id = $1;
	`

	_, err := c.pool.Exec(ctx, query, customerID, embedding)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
