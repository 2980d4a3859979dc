package usecase

import (
	"context"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

// CatalogUseCase управляет каталогом банковских продуктов.
type CatalogUseCase struct {
	productRepo ProductRepository
	dbPool      transaction.Transactional
	embedder    EmbedderInfra
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	dbPool transaction.Transactional,
	embedder EmbedderInfra,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		dbPool:      dbPool,
		embedder:    embedder,
		logger:      logger,
	}
}

// RegisterProduct идемпотентно создаёт или обновляет продукт каталога.
// Эмбеддинг нового или изменённого описания вычисляется лениво при первом
// обращении ретривера.
func (c *CatalogUseCase) RegisterProduct(ctx context.Context, req *RegisterProductReq) error {
	const op = "CatalogUseCase.RegisterProduct"

	var err error
	err = c.validateProduct(req)
	if err != nil {
		return e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	err = c.productRepo.Upsert(ctx, domain.NewProduct(req.ID, req.Description, req.AnnualRate))
	if err != nil {
		return e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// WarmProductEmbeddings векторизует все продукты без эмбеддинга.
// Вызывается при старте, чтобы первый запрос не платил за весь каталог;
// отказ по отдельному продукту не фатален.
func (c *CatalogUseCase) WarmProductEmbeddings(ctx context.Context) error {
	const op = "CatalogUseCase.WarmProductEmbeddings"

	products, err := c.productRepo.GetAll(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	updated := 0
	for _, product := range products {
		if product.Embedding != nil || product.Description == "" {
			continue
		}

		vector, err := c.embedder.Embed(ctx, product.Description)
		if err != nil {
			c.logger.Warnf("failed to embed product %s: %v", product.ID, e.Wrap(op, err))
			continue
		}

		if err := c.productRepo.SetEmbedding(ctx, product.ID, vector); err != nil {
			c.logger.Warnf("failed to persist embedding for product %s: %v", product.ID, e.Wrap(op, err))
			continue
		}
		updated++
	}

	c.logger.Infof("updated embeddings for %d products", updated)
	return nil
}

// validateProduct проверяет корректность входных данных запроса на регистрацию продукта.
func (c *CatalogUseCase) validateProduct(req *RegisterProductReq) error {
	if strings.TrimSpace(req.ID) == "" {
		return e.ErrProductIDRequired
	}

	if strings.TrimSpace(req.Description) == "" {
		return e.ErrDescriptionRequired
	}

	if req.AnnualRate < 0 {
		return e.ErrInvalidRate
	}

	return nil
}
