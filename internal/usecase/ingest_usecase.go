package usecase

import (
	"context"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

// IngestUseCase обрабатывает usage-события: дописывает историю клиента,
// инвалидирует его эмбеддинг и ведёт журнал обработанных событий.
type IngestUseCase struct {
	usageLogRepo UsageLogRepository
	customerRepo CustomerRepository
	dbPool       transaction.Transactional
	publisher    EventPublisher // nil, если публикация не сконфигурирована
	logger       logger.Logger
}

func NewIngestUC(
	usageLogRepo UsageLogRepository,
	customerRepo CustomerRepository,
	dbPool transaction.Transactional,
	publisher EventPublisher,
	logger logger.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		usageLogRepo: usageLogRepo,
		customerRepo: customerRepo,
		dbPool:       dbPool,
		publisher:    publisher,
		logger:       logger,
	}
}

// Process разбирает сообщение очереди "<customer_id>:<action>" и в одной
// транзакции записывает журнальную строку, дописывает историю и обнуляет
// эмбеддинг клиента. Сообщение без двоеточия отбрасывается без мутаций.
func (i *IngestUseCase) Process(ctx context.Context, raw string) error {
	const op = "IngestUseCase.Process"

	customerID, action, ok := splitEvent(raw)
	if !ok {
		i.logger.Warnf("dropping malformed usage event: %q", raw)
		return e.Wrap(op, e.ErrMalformedEvent)
	}

	event := domain.NewUsageEvent(customerID, action, time.Now().UTC())

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Журнальная строка пишется и для неизвестного клиента: аудиторский след
	err = i.usageLogRepo.Append(ctx, event)
	if err != nil {
		return e.Wrap(op, err)
	}

	appended, err := i.customerRepo.AppendAction(ctx, customerID, action)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	if !appended {
		i.logger.Warnf("usage event for unknown customer %s logged without profile mutation", customerID)
	}

	// Публикация после коммита, по принципу best-effort
	if i.publisher != nil {
		if err := i.publisher.PublishUsageEvent(ctx, NewPublishUsageEventReq(customerID, action, event.Timestamp)); err != nil {
			i.logger.Warnf("failed to publish usage event for %s: %v", customerID, err)
		}
	}

	return nil
}

// splitEvent делит сообщение по первому двоеточию: действие само может
// содержать двоеточия.
func splitEvent(raw string) (customerID string, action string, ok bool) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	return parts[0], parts[1], true
}
