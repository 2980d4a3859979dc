package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

func TestSimulateUC_Simulate(t *testing.T) {
	customers := newFakeCustomerRepo(
		&domain.Customer{ID: "cust001"},
		&domain.Customer{ID: "cust002"},
	)
	queue := &fakeQueue{}
	uc := NewSimulateUC(customers, queue, nopLogger{})

	res, err := uc.Simulate(context.Background(), NewSimulateUsageReq(
		[]string{"cust001", "cust002"}, 3, time.Millisecond))

	assert.Nil(t, err)
	assert.Equal(t, []string{"cust001", "cust002"}, res.Customers)
	assert.Equal(t, 6, res.Events)
	assert.Len(t, queue.events, 6)

	// События в том же формате, что у реального конвейера
	for _, event := range queue.events {
		id, action, ok := splitEvent(event)
		assert.True(t, ok)
		assert.Contains(t, []string{"cust001", "cust002"}, id)
		assert.Contains(t, simulatedActions, action)
	}
}

func TestSimulateUC_Simulate_DefaultsToFirstCustomers(t *testing.T) {
	customers := newFakeCustomerRepo(
		&domain.Customer{ID: "cust003"},
		&domain.Customer{ID: "cust001"},
		&domain.Customer{ID: "cust002"},
	)
	queue := &fakeQueue{}
	uc := NewSimulateUC(customers, queue, nopLogger{})

	res, err := uc.Simulate(context.Background(), NewSimulateUsageReq(nil, 1, time.Millisecond))

	assert.Nil(t, err)
	// Первые два клиента в порядке идентификатора
	assert.Equal(t, []string{"cust001", "cust002"}, res.Customers)
	assert.Equal(t, 2, res.Events)
}

func TestSimulateUC_Simulate_NoCustomersInStore(t *testing.T) {
	uc := NewSimulateUC(newFakeCustomerRepo(), &fakeQueue{}, nopLogger{})

	_, err := uc.Simulate(context.Background(), NewSimulateUsageReq(nil, 1, time.Millisecond))

	assert.ErrorIs(t, err, e.ErrCustomerNotFound)
}

func TestSimulateUC_Simulate_UnknownCustomersAreDropped(t *testing.T) {
	customers := newFakeCustomerRepo(&domain.Customer{ID: "cust001"})
	queue := &fakeQueue{}
	uc := NewSimulateUC(customers, queue, nopLogger{})

	res, err := uc.Simulate(context.Background(), NewSimulateUsageReq(
		[]string{"cust001", "ghost"}, 2, time.Millisecond))

	assert.Nil(t, err)
	assert.Equal(t, []string{"cust001"}, res.Customers)
	for _, event := range queue.events {
		assert.True(t, strings.HasPrefix(event, "cust001:"))
	}
}

func TestSimulateUC_Simulate_AllCustomersUnknown(t *testing.T) {
	uc := NewSimulateUC(newFakeCustomerRepo(), &fakeQueue{}, nopLogger{})

	_, err := uc.Simulate(context.Background(), NewSimulateUsageReq(
		[]string{"ghost"}, 1, time.Millisecond))

	assert.ErrorIs(t, err, e.ErrNoValidCustomers)
}
