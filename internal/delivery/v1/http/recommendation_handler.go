package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

type RecommendationHandler struct {
	recommendationUsecase usecase.RecommendationUC
	logger                logger.Logger
}

func NewRecommendationHandler(recommendationUsecase usecase.RecommendationUC, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recommendationUsecase: recommendationUsecase, logger: logger}
}

type recommendationItem struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
}

type recommendationsResponse struct {
	CustomerID      string               `json:"customer_id"`
	Recommendations []recommendationItem `json:"recommendations"`
	Explanation     string               `json:"explanation"`
}

// getRecommendations
//
//	@Summary		Рекомендации продуктов для клиента
//	@Description	Возвращает ближайшие продукты и сгенерированное объяснение
//	@Tags			recommendations
//	@Produce		json
//	@Param			customer_id	path		string	true	"Идентификатор клиента"
//	@Success		200			{object}	recommendationsResponse
//	@Failure		404			{object}	ErrorResponse	"Клиент не найден"
//	@Failure		500			{object}	ErrorResponse
//	@Router			/recommendations/{customer_id} [get]
func (h *RecommendationHandler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customer_id")
	if customerID == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.recommendationUsecase.GetRecommendations(r.Context(), usecase.NewGetRecommendationsReq(customerID))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]recommendationItem, 0, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		items = append(items, recommendationItem{
			ProductID:   rec.ProductID,
			Description: rec.Description,
		})
	}

	WriteSuccess(w, http.StatusOK, recommendationsResponse{
		CustomerID:      res.CustomerID,
		Recommendations: items,
		Explanation:     res.Explanation,
	})
}
