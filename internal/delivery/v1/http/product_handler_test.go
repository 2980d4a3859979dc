package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
)

type fakeCatalogUC struct {
	registered []*usecase.RegisterProductReq
	err        error
}

func (f *fakeCatalogUC) RegisterProduct(ctx context.Context, req *usecase.RegisterProductReq) error {
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, req)
	return nil
}

func (f *fakeCatalogUC) WarmProductEmbeddings(ctx context.Context) error {
	return nil
}

func newProductTestRouter(uc usecase.CatalogUC) *chi.Mux {
	r := chi.NewRouter()
	handler := NewProductHandler(uc, nopLogger{})
	r.Post("/api/v1/products", handler.registerProduct)
	return r
}

func postProduct(t *testing.T, router *chi.Mux, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestProductHandler_Register(t *testing.T) {
	uc := &fakeCatalogUC{}
	rec := postProduct(t, newProductTestRouter(uc),
		`{"id": "deposit-fixed", "description": "Срочный вклад", "annual_rate": "6.20"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, uc.registered, 1)
	assert.Equal(t, "deposit-fixed", uc.registered[0].ID)
	assert.Equal(t, int64(620), uc.registered[0].AnnualRate)
}

func TestProductHandler_MissingID(t *testing.T) {
	uc := &fakeCatalogUC{}
	rec := postProduct(t, newProductTestRouter(uc),
		`{"description": "без идентификатора", "annual_rate": "1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.registered)
}

func TestProductHandler_MissingDescription(t *testing.T) {
	uc := &fakeCatalogUC{}
	rec := postProduct(t, newProductTestRouter(uc),
		`{"id": "p1", "description": "   ", "annual_rate": "1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_BadRate(t *testing.T) {
	uc := &fakeCatalogUC{}
	rec := postProduct(t, newProductTestRouter(uc),
		`{"id": "p1", "description": "d", "annual_rate": "not-a-number"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_MalformedJSON(t *testing.T) {
	uc := &fakeCatalogUC{}
	rec := postProduct(t, newProductTestRouter(uc), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
