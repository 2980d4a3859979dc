package queue

import (
	"context"
	"sync"
	"time"

	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

const processTimeout = 30 * time.Second

// ConsumerWorker крутит цикл BLPOP → IngestUC.Process.
// Обработка снятого события выполняется в отдельном bounded-контексте:
// остановка сервиса не обрывает уже начатую транзакцию.
type ConsumerWorker struct {
	queue  *UsageQueue
	ingest usecase.IngestUC
	logger logger.Logger
	stop   chan struct{}
	wg     sync.WaitGroup
}

func NewConsumerWorker(queue *UsageQueue, ingest usecase.IngestUC, logger logger.Logger) *ConsumerWorker {
	return &ConsumerWorker{
		queue:  queue,
		ingest: ingest,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

func (w *ConsumerWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

func (w *ConsumerWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *ConsumerWorker) run(ctx context.Context) {
	w.logger.Infof("Usage queue consumer started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Usage queue consumer stopped by context cancellation")
			return
		case <-w.stop:
			w.logger.Infof("Usage queue consumer stopped")
			return
		default:
		}

		raw, ok, err := w.queue.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			w.logger.Warnf("Queue pop failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if !ok {
			continue
		}

		// Событие уже снято с очереди, доводим обработку до конца
		// независимо от внешнего контекста.
		procCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
		if err := w.ingest.Process(procCtx, raw); err != nil {
			w.logger.Warnf("Usage event processing failed: %v", err)
		}
		cancel()
	}
}
