package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeRecommendationUC struct {
	res *usecase.GetRecommendationsRes
	err error
}

func (f *fakeRecommendationUC) GetRecommendations(ctx context.Context, req *usecase.GetRecommendationsReq) (*usecase.GetRecommendationsRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newTestRouter(uc usecase.RecommendationUC) *chi.Mux {
	r := chi.NewRouter()
	handler := NewRecommendationHandler(uc, nopLogger{})
	r.Get("/api/v1/recommendations/{customer_id}", handler.getRecommendations)
	return r
}

func TestRecommendationHandler_OK(t *testing.T) {
	uc := &fakeRecommendationUC{
		res: usecase.NewGetRecommendationsRes("c1",
			[]usecase.Recommendation{{ProductID: "p1", Description: "product one"}},
			"because reasons"),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/c1", nil)
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body recommendationsResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "c1", body.CustomerID)
	assert.Len(t, body.Recommendations, 1)
	assert.Equal(t, "p1", body.Recommendations[0].ProductID)
	assert.Equal(t, "because reasons", body.Explanation)
}

func TestRecommendationHandler_NotFound(t *testing.T) {
	uc := &fakeRecommendationUC{err: e.Wrap("CustomerRepo.GetByID", e.ErrCustomerNotFound)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/ghost", nil)
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestRecommendationHandler_InternalError(t *testing.T) {
	uc := &fakeRecommendationUC{err: assert.AnError}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/c1", nil)
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecommendationHandler_EmptyRecommendations(t *testing.T) {
	uc := &fakeRecommendationUC{
		res: usecase.NewGetRecommendationsRes("c1", nil, "nothing to recommend"),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/c1", nil)
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body recommendationsResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Recommendations)
}
