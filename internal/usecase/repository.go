package usecase

import (
	"context"

	"github.com/narahe-ltd/recommendation-ai/internal/domain"
)

type CustomerRepository interface {
	// GetByID возвращает e.ErrCustomerNotFound для неизвестного клиента.
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// AppendAction дописывает действие в историю и обнуляет эмбеддинг
	// одним оператором. Возвращает false, если клиент не найден.
	// Требует транзакции в контексте.
	AppendAction(ctx context.Context, id string, action string) (bool, error)
	SetEmbedding(ctx context.Context, id string, vector []float32) error
	// ListIDs возвращает до limit идентификаторов клиентов в порядке id.
	ListIDs(ctx context.Context, limit int) ([]string, error)
	// FilterKnown возвращает подмножество ids, существующих в хранилище.
	FilterKnown(ctx context.Context, ids []string) ([]string, error)
}

type ProductRepository interface {
	// Upsert требует транзакции в контексте.
	Upsert(ctx context.Context, product *domain.Product) error
	GetAll(ctx context.Context) ([]domain.Product, error)
	// SetEmbedding записывает вектор только в пустую колонку:
	// однажды вычисленный эмбеддинг продукта не перезаписывается.
	SetEmbedding(ctx context.Context, id string, vector []float32) error
}

type UsageLogRepository interface {
	// Append требует транзакции в контексте.
	Append(ctx context.Context, event *domain.UsageEvent) error
}

type CacheRepository interface {
	SetRecommendations(ctx context.Context, customerID string, recs []Recommendation) error
	// GetRecommendations возвращает (nil, nil) при промахе кэша.
	GetRecommendations(ctx context.Context, customerID string) ([]Recommendation, error)
	SetExplanation(ctx context.Context, fingerprint string, text string) error
	// GetExplanation возвращает ("", nil) при промахе кэша.
	GetExplanation(ctx context.Context, fingerprint string) (string, error)
}
