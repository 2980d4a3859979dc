package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/internal/repository/pgdb/converter"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/tr"
)

// ProductRepo реализует репозиторий банковских продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Upsert идемпотентно создаёт или обновляет продукт по идентификатору.
// При изменении описания эмбеддинг сбрасывается в NULL и будет пересчитан лениво.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (id, description, annual_rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			description = EXCLUDED.description,
			annual_rate = EXCLUDED.annual_rate,
			embedding = CASE
				WHEN products.description IS DISTINCT FROM EXCLUDED.description THEN NULL
				ELSE products.embedding
			END;
	`

	_, err = tx.Exec(ctx, query, product.ID, product.Description, product.AnnualRate)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetAll возвращает весь каталог продуктов, отсортированный по идентификатору.
func (p *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, description, annual_rate, embedding, created_at
		FROM products
		ORDER BY id;
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[converter.ProductModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// SetEmbedding сохраняет эмбеддинг продукта. Запись write-once: уже
// посчитанный эмбеддинг не перетирается конкурентным пересчётом.
func (p *ProductRepo) SetEmbedding(ctx context.Context, productID string, embedding []float32) error {
	query := `
		UPDATE products
		SET embedding = $2
		WHERE id = $1 AND embedding IS NULL;
	`

	_, err := p.pool.Exec(ctx, query, productID, embedding)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
