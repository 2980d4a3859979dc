package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/narahe-ltd/recommendation-ai/internal/cfg"
	"github.com/narahe-ltd/recommendation-ai/internal/repository/redis/converter"
	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/clients"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

// CacheRepo хранит готовые рекомендации и объяснения в Redis с TTL.
// Кэш не является источником истины: любой сбой чтения или записи
// трактуется как промах и логируется, запрос обслуживается дальше.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.RecommendationConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.RecommendationConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// SetRecommendations кэширует список рекомендаций клиента.
func (r *CacheRepo) SetRecommendations(ctx context.Context, customerID string, recs []usecase.Recommendation) error {
	models := r.conv.ToArrRedisModel(recs)

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	key := r.recommendationsKey(customerID)
	if err := r.client.Client.Set(ctx, key, data, r.cfg.RecommendationTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetRecommendations возвращает (nil, nil) при промахе кэша.
func (r *CacheRepo) GetRecommendations(ctx context.Context, customerID string) ([]usecase.Recommendation, error) {
	key := r.recommendationsKey(customerID)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.RecommendationRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed, dropping key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return r.conv.ToArrUseCase(models), nil
}

// SetExplanation кэширует сгенерированное объяснение по отпечатку запроса.
func (r *CacheRepo) SetExplanation(ctx context.Context, fingerprint string, text string) error {
	key := r.explanationKey(fingerprint)
	if err := r.client.Client.Set(ctx, key, text, r.cfg.ExplanationTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetExplanation возвращает ("", nil) при промахе кэша.
func (r *CacheRepo) GetExplanation(ctx context.Context, fingerprint string) (string, error) {
	key := r.explanationKey(fingerprint)

	text, err := r.client.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return text, nil
}

// Ping проверяет соединение с Redis для health-check.
func (r *CacheRepo) Ping(ctx context.Context) error {
	if err := r.client.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CacheRepo) recommendationsKey(customerID string) string {
	return fmt.Sprintf("recs:%s", customerID)
}

func (r *CacheRepo) explanationKey(fingerprint string) string {
	return fmt.Sprintf("exp:%s", fingerprint)
}
