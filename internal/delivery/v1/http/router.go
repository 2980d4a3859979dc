package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/narahe-ltd/recommendation-ai/docs" // Импорт сгенерированных файлов
	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(recUC usecase.RecommendationUC, catUC usecase.CatalogUC,
	simUC usecase.SimulateUC, pingDB, pingCache, pingQueue PingFunc) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	healthHandler := NewHealthHandler(pingDB, pingCache, pingQueue, r.logger)
	r.router.Get("/health", healthHandler.health)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		recHandler := NewRecommendationHandler(recUC, r.logger)
		registerRecommendationRoutes(v1, recHandler)

		prHandler := NewProductHandler(catUC, r.logger)
		registerProductRoutes(v1, prHandler)

		simHandler := NewSimulateHandler(simUC, r.logger)
		registerSimulateRoutes(v1, simHandler)
	})
}

func registerRecommendationRoutes(router chi.Router, recHandler *RecommendationHandler) {
	router.Route("/recommendations", func(rec chi.Router) {
		rec.Get("/{customer_id}", recHandler.getRecommendations)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.registerProduct)
	})
}

func registerSimulateRoutes(router chi.Router, simHandler *SimulateHandler) {
	router.Post("/simulate_usage", simHandler.simulateUsage)
}
