package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
)

const (
	defaultSimulatedCustomers = 2
	defaultEventsPerCustomer  = 10
	defaultSimulateDelay      = 2 * time.Second
)

// Типовые действия клиента для синтетической нагрузки.
var simulatedActions = []string{
	"used mobile app for transfer",
	"applied for travel credit card",
	"made online payment",
	"checked investment options",
	"used ATM",
	"viewed loan rates",
	"deposited check via app",
	"activated cashback offer",
}

// SimulateUseCase генерирует синтетические usage-события и кладёт их
// в очередь в том же формате "<customer_id>:<action>", что и реальные.
type SimulateUseCase struct {
	customerRepo CustomerRepository
	queue        QueuePusher
	logger       logger.Logger
}

func NewSimulateUC(customerRepo CustomerRepository, queue QueuePusher, logger logger.Logger) *SimulateUseCase {
	return &SimulateUseCase{
		customerRepo: customerRepo,
		queue:        queue,
		logger:       logger,
	}
}

// Simulate ставит в очередь NumEvents событий на каждого клиента,
// выдерживая Delay между циклами по клиентам. Без явного списка
// клиентов берутся первые defaultSimulatedCustomers из базы.
// Неизвестные клиенты из запроса отбрасываются с предупреждением.
func (s *SimulateUseCase) Simulate(ctx context.Context, req *SimulateUsageReq) (*SimulateUsageRes, error) {
	const op = "SimulateUseCase.Simulate"

	customers, err := s.resolveCustomers(ctx, req.Customers)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	numEvents := req.NumEvents
	if numEvents <= 0 {
		numEvents = defaultEventsPerCustomer
	}
	delay := req.Delay
	if delay <= 0 {
		delay = defaultSimulateDelay
	}

	total := 0
	target := numEvents * len(customers)
	for total < target {
		for _, id := range customers {
			action := simulatedActions[rand.Intn(len(simulatedActions))]
			event := id + ":" + action

			if err := s.queue.Push(ctx, event); err != nil {
				return nil, e.Wrap(op, err)
			}
			s.logger.Infof("simulated usage event: %s", event)
			total++
		}

		if total >= target {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return NewSimulateUsageRes(customers, total), nil
}

func (s *SimulateUseCase) resolveCustomers(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) == 0 {
		ids, err := s.customerRepo.ListIDs(ctx, defaultSimulatedCustomers)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, e.ErrCustomerNotFound
		}
		return ids, nil
	}

	known, err := s.customerRepo.FilterKnown(ctx, requested)
	if err != nil {
		return nil, err
	}
	if len(known) < len(requested) {
		s.logger.Warnf("simulation request contains unknown customers: requested %d, known %d", len(requested), len(known))
	}
	if len(known) == 0 {
		return nil, e.ErrNoValidCustomers
	}

	return known, nil
}
