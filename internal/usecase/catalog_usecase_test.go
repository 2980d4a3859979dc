package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/internal/domain"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

func TestCatalogUC_RegisterProduct_Validation(t *testing.T) {
	uc := NewCatalogUC(newFakeProductRepo(), nil, newFakeEmbedder(), nopLogger{})

	err := uc.RegisterProduct(context.Background(), NewRegisterProductReq("", "desc", 100))
	assert.ErrorIs(t, err, e.ErrProductIDRequired)

	err = uc.RegisterProduct(context.Background(), NewRegisterProductReq("p1", "  ", 100))
	assert.ErrorIs(t, err, e.ErrDescriptionRequired)

	err = uc.RegisterProduct(context.Background(), NewRegisterProductReq("p1", "desc", -1))
	assert.ErrorIs(t, err, e.ErrInvalidRate)
}

func TestCatalogUC_WarmProductEmbeddings(t *testing.T) {
	products := newFakeProductRepo(
		domain.Product{ID: "cold", Description: "needs embedding"},
		domain.Product{ID: "warm", Description: "already has one", Embedding: []float32{1}},
		domain.Product{ID: "blank", Description: ""},
	)
	embedder := newFakeEmbedder()
	embedder.vectors["needs embedding"] = []float32{0.5, 0.5}

	uc := NewCatalogUC(products, nil, embedder, nopLogger{})

	err := uc.WarmProductEmbeddings(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, products.setEmbeddings["cold"])
	assert.NotContains(t, products.setEmbeddings, "warm")
	assert.NotContains(t, products.setEmbeddings, "blank")
	assert.Equal(t, 1, embedder.callCount())
}

func TestCatalogUC_WarmProductEmbeddings_EmbedFailureNotFatal(t *testing.T) {
	products := newFakeProductRepo(
		domain.Product{ID: "p1", Description: "desc"},
	)
	embedder := newFakeEmbedder()
	embedder.err = assert.AnError

	uc := NewCatalogUC(products, nil, embedder, nopLogger{})

	err := uc.WarmProductEmbeddings(context.Background())

	assert.Nil(t, err)
	assert.Empty(t, products.setEmbeddings)
}
