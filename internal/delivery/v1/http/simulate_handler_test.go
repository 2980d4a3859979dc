package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

type fakeSimulateUC struct {
	req *usecase.SimulateUsageReq
	res *usecase.SimulateUsageRes
	err error
}

func (f *fakeSimulateUC) Simulate(ctx context.Context, req *usecase.SimulateUsageReq) (*usecase.SimulateUsageRes, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newSimulateRouter(uc usecase.SimulateUC) *chi.Mux {
	r := chi.NewRouter()
	handler := NewSimulateHandler(uc, nopLogger{})
	r.Post("/api/v1/simulate_usage", handler.simulateUsage)
	return r
}

func TestSimulateHandler_OK(t *testing.T) {
	uc := &fakeSimulateUC{res: usecase.NewSimulateUsageRes([]string{"c1", "c2"}, 20)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate_usage",
		strings.NewReader(`{"customers":["c1","c2"],"num_events":10,"delay":0.5}`))
	newSimulateRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body simulateUsageResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"c1", "c2"}, body.Customers)
	assert.Equal(t, 20, body.Events)

	assert.Equal(t, []string{"c1", "c2"}, uc.req.Customers)
	assert.Equal(t, 10, uc.req.NumEvents)
	assert.Equal(t, 500*time.Millisecond, uc.req.Delay)
}

func TestSimulateHandler_EmptyBodyUsesDefaults(t *testing.T) {
	uc := &fakeSimulateUC{res: usecase.NewSimulateUsageRes([]string{"c1"}, 10)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate_usage", nil)
	newSimulateRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, uc.req.Customers)
	assert.Equal(t, 0, uc.req.NumEvents)
}

func TestSimulateHandler_NoValidCustomers(t *testing.T) {
	uc := &fakeSimulateUC{err: e.Wrap("SimulateUseCase.Simulate", e.ErrNoValidCustomers)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate_usage",
		strings.NewReader(`{"customers":["ghost"]}`))
	newSimulateRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
}

func TestSimulateHandler_EmptyStore(t *testing.T) {
	uc := &fakeSimulateUC{err: e.Wrap("SimulateUseCase.Simulate", e.ErrCustomerNotFound)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate_usage", nil)
	newSimulateRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimulateHandler_MalformedBody(t *testing.T) {
	uc := &fakeSimulateUC{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate_usage",
		strings.NewReader(`{"customers":`))
	newSimulateRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
