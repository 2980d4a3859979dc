//go:generate goverter gen github.com/narahe-ltd/recommendation-ai/internal/repository/redis/converter

package converter

import (
	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
)

// goverter:converter
type RecommendationConverter interface {
	ToRedisModel(entity *usecase.Recommendation) *RecommendationRedisModel
	ToUseCase(model *RecommendationRedisModel) *usecase.Recommendation
	ToArrRedisModel(entities []usecase.Recommendation) []RecommendationRedisModel
	ToArrUseCase(models []RecommendationRedisModel) []usecase.Recommendation
}
