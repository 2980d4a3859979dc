package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	getErr    error
	setErr    error

	mu            sync.Mutex
	setEmbeddings map[string][]float32
}

func newFakeCustomerRepo(customers ...*domain.Customer) *fakeCustomerRepo {
	byID := make(map[string]*domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	return &fakeCustomerRepo{
		customers:     byID,
		setEmbeddings: make(map[string][]float32),
	}
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.customers[id]
	if !ok {
		return nil, e.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) AppendAction(ctx context.Context, id string, action string) (bool, error) {
	c, ok := f.customers[id]
	if !ok {
		return false, nil
	}
	c.TransactionHistory = append(c.TransactionHistory, action)
	c.Embedding = nil
	return true, nil
}

func (f *fakeCustomerRepo) SetEmbedding(ctx context.Context, id string, vector []float32) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setEmbeddings[id] = vector
	return nil
}

func (f *fakeCustomerRepo) ListIDs(ctx context.Context, limit int) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	ids := make([]string, 0, len(f.customers))
	for id := range f.customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeCustomerRepo) FilterKnown(ctx context.Context, ids []string) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var known []string
	for _, id := range ids {
		if _, ok := f.customers[id]; ok {
			known = append(known, id)
		}
	}
	sort.Strings(known)
	return known, nil
}

type fakeQueue struct {
	events []string
	err    error
}

func (f *fakeQueue) Push(ctx context.Context, event string) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fakeProductRepo struct {
	products []domain.Product
	getErr   error

	mu            sync.Mutex
	setEmbeddings map[string][]float32
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	return &fakeProductRepo{
		products:      products,
		setEmbeddings: make(map[string][]float32),
	}
}

func (f *fakeProductRepo) Upsert(ctx context.Context, product *domain.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.products, nil
}

func (f *fakeProductRepo) SetEmbedding(ctx context.Context, id string, vector []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setEmbeddings[id] = vector
	return nil
}

type fakeCacheRepo struct {
	mu              sync.Mutex
	recommendations map[string][]Recommendation
	explanations    map[string]string
	getExpErr       error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{
		recommendations: make(map[string][]Recommendation),
		explanations:    make(map[string]string),
	}
}

func (f *fakeCacheRepo) SetRecommendations(ctx context.Context, customerID string, recs []Recommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recommendations[customerID] = recs
	return nil
}

func (f *fakeCacheRepo) GetRecommendations(ctx context.Context, customerID string) ([]Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recommendations[customerID], nil
}

func (f *fakeCacheRepo) SetExplanation(ctx context.Context, fingerprint string, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.explanations[fingerprint] = text
	return nil
}

func (f *fakeCacheRepo) GetExplanation(ctx context.Context, fingerprint string) (string, error) {
	if f.getExpErr != nil {
		return "", f.getExpErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.explanations[fingerprint], nil
}

type fakeUsageLogRepo struct {
	events []*domain.UsageEvent
	err    error
}

func (f *fakeUsageLogRepo) Append(ctx context.Context, event *domain.UsageEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fakePublisher struct {
	published []*PublishUsageEventReq
	err       error
}

func (f *fakePublisher) PublishUsageEvent(ctx context.Context, req *PublishUsageEventReq) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, req)
	return nil
}

// fakeTx подменяет только завершение транзакции; остальные методы pgx.Tx
// в тестах не вызываются.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return f.tx, nil
}

func (f *fakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	return f.tx, nil
}

type fakeEmbedder struct {
	mu      sync.Mutex
	calls   []string
	vectors map[string][]float32
	err     error
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vectors: make(map[string][]float32)}
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeGenerator struct {
	mu        sync.Mutex
	calls     int
	responses []string
	err       error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	out := f.responses[0]
	f.responses = f.responses[1:]
	return out, nil
}
