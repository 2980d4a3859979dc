package domain

import "time"

// Product описывает банковский продукт каталога.
// Embedding вычисляется из описания один раз при первом обращении
// и после этого считается неизменным.
type Product struct {
	ID          string
	Description string
	AnnualRate  int64 // Ставка хранится в базисных пунктах
	Embedding   []float32
	CreatedAt   time.Time
}

func NewProduct(id string, description string, annualRate int64) *Product {
	return &Product{
		ID:          id,
		Description: description,
		AnnualRate:  annualRate,
	}
}
