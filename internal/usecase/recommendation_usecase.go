package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

// RecommendationUseCase реализует путь чтения: ленивый пересчёт эмбеддинга
// клиента, подбор ближайших продуктов и генерация объяснения.
type RecommendationUseCase struct {
	customerRepo CustomerRepository
	retriever    *Retriever
	explainer    *Explainer
	cacheRepo    CacheRepository
	embedder     EmbedderInfra
	logger       logger.Logger
	topK         int
}

func NewRecommendationUC(
	customerRepo CustomerRepository,
	retriever *Retriever,
	explainer *Explainer,
	cacheRepo CacheRepository,
	embedder EmbedderInfra,
	logger logger.Logger,
	topK int,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		customerRepo: customerRepo,
		retriever:    retriever,
		explainer:    explainer,
		cacheRepo:    cacheRepo,
		embedder:     embedder,
		logger:       logger,
		topK:         topK,
	}
}

// GetRecommendations возвращает top-K продуктов для клиента и объяснение.
// Кэш рекомендаций пополняется как побочный эффект и путь чтения
// не сокращает: пересчёт выполняется на каждый запрос.
func (r *RecommendationUseCase) GetRecommendations(ctx context.Context, req *GetRecommendationsReq) (*GetRecommendationsRes, error) {
	const op = "RecommendationUseCase.GetRecommendations"

	customer, err := r.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	vector, err := r.embeddingFor(ctx, customer)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recs, err := r.retriever.TopK(ctx, vector, r.topK)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	explanation := r.explainer.Explain(ctx, NewCustomerProfile(customer.TransactionHistory, customer.Preferences), recs)

	// Фоновое пополнение кэша для внешних потребителей
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := r.cacheRepo.SetRecommendations(bgCtx, customer.ID, recs); err != nil {
			r.logger.Warnf("failed to cache recommendations in background: %v", e.Wrap(op, err))
		}
	}()

	return NewGetRecommendationsRes(customer.ID, recs, explanation), nil
}

// embeddingFor возвращает актуальный эмбеддинг клиента. Ненулевой вектор
// используется как есть; для устаревшего профиль векторизуется синхронно,
// результат записывается обратно в хранилище. Пересчёт — чистая функция
// текущей истории и предпочтений, поэтому повторные чтения сходятся к
// одному вектору, а неудачная запись лишь откладывает пересчёт.
func (r *RecommendationUseCase) embeddingFor(ctx context.Context, customer *domain.Customer) ([]float32, error) {
	if !customer.IsStale() {
		r.logger.Debugf("using existing embedding for customer %s", customer.ID)
		return customer.Embedding, nil
	}

	vector, err := r.embedder.Embed(ctx, ProfileText(customer.TransactionHistory, customer.Preferences))
	if err != nil {
		return nil, err
	}

	if err := r.customerRepo.SetEmbedding(ctx, customer.ID, vector); err != nil {
		r.logger.Warnf("failed to persist embedding for customer %s: %v", customer.ID, err)
	} else {
		r.logger.Infof("generated new embedding for customer %s", customer.ID)
	}

	return vector, nil
}

// ProfileText собирает текст профиля: история через пробел, затем предпочтения.
func ProfileText(history []string, preferences string) string {
	return strings.Join(history, " ") + " " + preferences
}
