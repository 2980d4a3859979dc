package usecase

import "context"

type EmbedderInfra interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type GeneratorInfra interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type EventPublisher interface {
	PublishUsageEvent(ctx context.Context, req *PublishUsageEventReq) error
}

type QueuePusher interface {
	Push(ctx context.Context, event string) error
}
