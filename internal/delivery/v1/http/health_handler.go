package http

import (
	"context"
	"net/http"
	"time"

	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

// PingFunc проверяет доступность одной зависимости.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	pingDB    PingFunc
	pingCache PingFunc
	pingQueue PingFunc
	logger    logger.Logger
}

func NewHealthHandler(pingDB, pingCache, pingQueue PingFunc, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		pingDB:    pingDB,
		pingCache: pingCache,
		pingQueue: pingQueue,
		logger:    logger,
	}
}

type healthResponse struct {
	Database bool `json:"database"`
	Cache    bool `json:"cache"`
	Queue    bool `json:"queue"`
}

// health
//
//	@Summary	Состояние зависимостей сервиса
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Failure	503	{object}	healthResponse
//	@Router		/health [get]
func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{
		Database: h.check(ctx, "database", h.pingDB),
		Cache:    h.check(ctx, "cache", h.pingCache),
		Queue:    h.check(ctx, "queue", h.pingQueue),
	}

	status := http.StatusOK
	if !res.Database || !res.Cache || !res.Queue {
		status = http.StatusServiceUnavailable
	}

	WriteSuccess(w, status, res)
}

func (h *HealthHandler) check(ctx context.Context, name string, ping PingFunc) bool {
	if err := ping(ctx); err != nil {
		h.logger.Warnf("Health check failed for %s: %v", name, err)
		return false
	}
	return true
}
