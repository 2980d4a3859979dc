package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

// DistanceMetric — метрика расстояния между векторами.
type DistanceMetric string

const (
	MetricCosine DistanceMetric = "cosine"
	MetricL2     DistanceMetric = "l2"
)

// ParseMetric проверяет имя метрики из конфигурации.
func ParseMetric(s string) (DistanceMetric, error) {
	switch DistanceMetric(s) {
	case MetricCosine, MetricL2:
		return DistanceMetric(s), nil
	default:
		return "", e.Wrap(s, e.ErrUnknownDistanceMetric)
	}
}

// Retriever ранжирует продукты каталога по расстоянию до вектора клиента.
// Эмбеддинг продукта вычисляется лениво при первом обращении и далее
// считается неизменным.
type Retriever struct {
	productRepo ProductRepository
	embedder    EmbedderInfra
	metric      DistanceMetric
	logger      logger.Logger
}

func NewRetriever(
	productRepo ProductRepository,
	embedder EmbedderInfra,
	metric DistanceMetric,
	logger logger.Logger,
) *Retriever {
	return &Retriever{
		productRepo: productRepo,
		embedder:    embedder,
		metric:      metric,
		logger:      logger,
	}
}

type scoredProduct struct {
	id          string
	description string
	distance    float64
}

// TopK возвращает не более k продуктов по возрастанию расстояния.
// Равные расстояния упорядочиваются по возрастанию id продукта.
// Пустой каталог — пустой результат, не ошибка.
func (r *Retriever) TopK(ctx context.Context, embedding []float32, k int) ([]Recommendation, error) {
	const op = "Retriever.TopK"

	products, err := r.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	scored := make([]scoredProduct, 0, len(products))
	for _, product := range products {
		vector := product.Embedding
		if vector == nil {
			vector, err = r.embedProduct(ctx, product.ID, product.Description)
			if err != nil {
				r.logger.Warnf("skipping product %s: %v", product.ID, e.Wrap(op, err))
				continue
			}
		}

		scored = append(scored, scoredProduct{
			id:          product.ID,
			description: product.Description,
			distance:    r.distance(embedding, vector),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].distance != scored[j].distance {
			return scored[i].distance < scored[j].distance
		}
		return scored[i].id < scored[j].id
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	result := make([]Recommendation, 0, len(scored))
	for _, s := range scored {
		result = append(result, NewRecommendation(s.id, s.description))
	}

	return result, nil
}

// embedProduct векторизует описание продукта и записывает результат.
// Неудачная запись не мешает использовать вектор в текущем запросе.
func (r *Retriever) embedProduct(ctx context.Context, id string, description string) ([]float32, error) {
	vector, err := r.embedder.Embed(ctx, description)
	if err != nil {
		return nil, err
	}

	if err := r.productRepo.SetEmbedding(ctx, id, vector); err != nil {
		r.logger.Warnf("failed to persist embedding for product %s: %v", id, err)
	}

	return vector, nil
}

func (r *Retriever) distance(a, b []float32) float64 {
	switch r.metric {
	case MetricL2:
		return l2Distance(a, b)
	default:
		return cosineDistance(a, b)
	}
}

// cosineDistance возвращает 1 - косинусное сходство.
// Несовместимые или нулевые векторы уходят в конец выдачи.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.MaxFloat64
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return math.MaxFloat64
	}

	return 1 - dot/denom
}

func l2Distance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.MaxFloat64
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return math.Sqrt(sum)
}
