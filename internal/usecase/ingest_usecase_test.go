package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

func TestSplitEvent(t *testing.T) {
	id, action, ok := splitEvent("cust1:viewed_deposit")
	assert.True(t, ok)
	assert.Equal(t, "cust1", id)
	assert.Equal(t, "viewed_deposit", action)

	// Действие само может содержать двоеточия
	id, action, ok = splitEvent("cust1:clicked:promo:banner")
	assert.True(t, ok)
	assert.Equal(t, "cust1", id)
	assert.Equal(t, "clicked:promo:banner", action)

	_, _, ok = splitEvent("no-separator")
	assert.False(t, ok)

	id, action, ok = splitEvent(":action-only")
	assert.True(t, ok)
	assert.Equal(t, "", id)
	assert.Equal(t, "action-only", action)
}

func TestIngestUC_Process(t *testing.T) {
	customers := newFakeCustomerRepo(&domain.Customer{
		ID:                 "cust001",
		TransactionHistory: []string{"used ATM"},
		Embedding:          []float32{0.5, 0.5},
	})
	usageLogs := &fakeUsageLogRepo{}
	db := newFakeDB()
	publisher := &fakePublisher{}
	uc := NewIngestUC(usageLogs, customers, db, publisher, nopLogger{})

	err := uc.Process(context.Background(), "cust001:used mobile app for transfer")

	assert.Nil(t, err)

	// Одна журнальная строка события
	assert.Len(t, usageLogs.events, 1)
	assert.Equal(t, "cust001", usageLogs.events[0].CustomerID)
	assert.Equal(t, "used mobile app for transfer", usageLogs.events[0].Action)

	// История дописана, эмбеддинг инвалидирован
	c := customers.customers["cust001"]
	assert.Equal(t, []string{"used ATM", "used mobile app for transfer"}, c.TransactionHistory)
	assert.Nil(t, c.Embedding)

	// Транзакция закоммичена, событие опубликовано после коммита
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
	assert.Len(t, publisher.published, 1)
	assert.Equal(t, "cust001", publisher.published[0].CustomerID)
}

func TestIngestUC_Process_UnknownCustomerIsLogged(t *testing.T) {
	customers := newFakeCustomerRepo()
	usageLogs := &fakeUsageLogRepo{}
	db := newFakeDB()
	uc := NewIngestUC(usageLogs, customers, db, nil, nopLogger{})

	err := uc.Process(context.Background(), "ghost:made online payment")

	assert.Nil(t, err)

	// Журнальная строка пишется и без профиля клиента
	assert.Len(t, usageLogs.events, 1)
	assert.Equal(t, "ghost", usageLogs.events[0].CustomerID)
	assert.True(t, db.tx.committed)
}

func TestIngestUC_Process_LogErrorRollsBack(t *testing.T) {
	customers := newFakeCustomerRepo()
	usageLogs := &fakeUsageLogRepo{err: errors.New("insert failed")}
	db := newFakeDB()
	uc := NewIngestUC(usageLogs, customers, db, nil, nopLogger{})

	err := uc.Process(context.Background(), "cust001:used ATM")

	assert.NotNil(t, err)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestIngestUC_Process_PublishFailureIsNotFatal(t *testing.T) {
	customers := newFakeCustomerRepo(&domain.Customer{ID: "cust001"})
	usageLogs := &fakeUsageLogRepo{}
	db := newFakeDB()
	publisher := &fakePublisher{err: errors.New("broker down")}
	uc := NewIngestUC(usageLogs, customers, db, publisher, nopLogger{})

	err := uc.Process(context.Background(), "cust001:checked investment options")

	assert.Nil(t, err)
	assert.True(t, db.tx.committed)
}

func TestIngestUC_MalformedEventIsDroppedWithoutMutation(t *testing.T) {
	customers := newFakeCustomerRepo()
	uc := NewIngestUC(nil, customers, nil, nil, nopLogger{})

	err := uc.Process(context.Background(), "garbage-without-separator")

	assert.ErrorIs(t, err, e.ErrMalformedEvent)
}
