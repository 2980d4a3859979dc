//go:generate goverter gen github.com/narahe-ltd/recommendation-ai/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/narahe-ltd/recommendation-ai/internal/domain"
)

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertVector
// goverter:extend ConvertHistory
type CustomerConverter interface {
	// goverter:ignore UpdatedAt
	ToModel(entity *domain.Customer) *CustomerModel
	ToEntity(model *CustomerModel) *domain.Customer
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertVector
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertVector(v []float32) []float32 {
	return v
}

func ConvertHistory(h []string) []string {
	return h
}
