package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type registerProductRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	AnnualRate  string `json:"annual_rate"` // процент годовых, например "4.25"
}

// registerProduct
//
//	@Summary		Регистрация банковского продукта
//	@Description	Создает или обновляет продукт каталога
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		registerProductRequest	true	"Продукт"
//	@Success		201		{object}	map[string]interface{}	"Успешная регистрация"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) registerProduct(w http.ResponseWriter, r *http.Request) {
	const maxBodySize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var body registerProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if strings.TrimSpace(body.ID) == "" {
		WriteError(w, e.ErrProductIDRequired)
		return
	}
	if strings.TrimSpace(body.Description) == "" {
		WriteError(w, e.ErrDescriptionRequired)
		return
	}

	rateBps, err := parseRateToBasisPoints(body.AnnualRate)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	req := usecase.NewRegisterProductReq(strings.TrimSpace(body.ID), strings.TrimSpace(body.Description), rateBps)
	if err := p.catalogUsecase.RegisterProduct(r.Context(), req); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"ID": req.ID,
	})
}
