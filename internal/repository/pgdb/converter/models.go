package converter

import "time"

// CustomerModel представляет строку таблицы customers.
type CustomerModel struct {
	ID                 string    `db:"id"`
	TransactionHistory []string  `db:"transaction_history"`
	Preferences        string    `db:"preferences"`
	Embedding          []float32 `db:"embedding"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// ProductModel представляет строку таблицы products.
type ProductModel struct {
	ID          string    `db:"id"`
	Description string    `db:"description"`
	AnnualRate  int64     `db:"annual_rate"`
	Embedding   []float32 `db:"embedding"`
	CreatedAt   time.Time `db:"created_at"`
}

// UsageLogModel представляет строку таблицы usage_logs.
type UsageLogModel struct {
	ID         int64     `db:"id"`
	CustomerID string    `db:"customer_id"`
	Action     string    `db:"action"`
	CreatedAt  time.Time `db:"created_at"`
}
