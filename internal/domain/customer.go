package domain

// Customer описывает клиента банка с его профилем потребления.
// Embedding равен nil, пока профиль не векторизован или после того,
// как очередное событие сделало прежний вектор устаревшим.
type Customer struct {
	ID                 string
	TransactionHistory []string // только добавление, порядок — порядок обработки событий
	Preferences        string
	Embedding          []float32
}

// IsStale сообщает, требуется ли пересчёт эмбеддинга.
func (c *Customer) IsStale() bool {
	return c.Embedding == nil
}
