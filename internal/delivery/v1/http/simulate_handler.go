package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

type SimulateHandler struct {
	simulateUsecase usecase.SimulateUC
	logger          logger.Logger
}

func NewSimulateHandler(simulateUsecase usecase.SimulateUC, logger logger.Logger) *SimulateHandler {
	return &SimulateHandler{simulateUsecase: simulateUsecase, logger: logger}
}

type simulateUsageRequest struct {
	Customers []string `json:"customers,omitempty"`
	NumEvents int      `json:"num_events,omitempty"` // событий на клиента
	Delay     float64  `json:"delay,omitempty"`      // секунды между циклами
}

type simulateUsageResponse struct {
	Customers []string `json:"customers"`
	Events    int      `json:"events"`
}

// simulateUsage
//
//	@Summary		Генерация синтетических usage-событий
//	@Description	Ставит в очередь события использования для выбранных или первых клиентов базы
//	@Tags			simulation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		simulateUsageRequest	false	"Параметры симуляции"
//	@Success		200		{object}	simulateUsageResponse	"Поставленные события"
//	@Failure		400		{object}	ErrorResponse			"Нет валидных клиентов"
//	@Failure		404		{object}	ErrorResponse			"База клиентов пуста"
//	@Router			/simulate_usage [post]
func (s *SimulateHandler) simulateUsage(w http.ResponseWriter, r *http.Request) {
	const maxBodySize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	// Тело не обязательно: пустой запрос означает параметры по умолчанию
	var body simulateUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	delay := time.Duration(body.Delay * float64(time.Second))
	req := usecase.NewSimulateUsageReq(body.Customers, body.NumEvents, delay)

	res, err := s.simulateUsecase.Simulate(r.Context(), req)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, simulateUsageResponse{
		Customers: res.Customers,
		Events:    res.Events,
	})
}
