package usecase

import "context"

type RecommendationUC interface {
	GetRecommendations(ctx context.Context, req *GetRecommendationsReq) (*GetRecommendationsRes, error)
}

type IngestUC interface {
	Process(ctx context.Context, raw string) error
}

type CatalogUC interface {
	RegisterProduct(ctx context.Context, req *RegisterProductReq) error
	WarmProductEmbeddings(ctx context.Context) error
}

type SimulateUC interface {
	Simulate(ctx context.Context, req *SimulateUsageReq) (*SimulateUsageRes, error)
}
