package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конвейера рекомендаций
	ErrMalformedEvent        = fmt.Errorf("malformed usage event")
	ErrEmptyVector           = fmt.Errorf("embedder returned empty vector")
	ErrEmptyGeneration       = fmt.Errorf("generation api returned empty completion")
	ErrEmbedderUnavailable   = fmt.Errorf("embedder is unavailable")
	ErrUnknownDistanceMetric = fmt.Errorf("unknown distance metric")
	ErrIncorrectEnvVariable  = fmt.Errorf("incorrect env variable")

	// 404 Not Found
	ErrCustomerNotFound = fmt.Errorf("customer not found")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrProductIDRequired   = fmt.Errorf("product id is required")
	ErrDescriptionRequired = fmt.Errorf("product description is required")
	ErrInvalidRate         = fmt.Errorf("invalid annual rate")
	ErrRatePrecision       = fmt.Errorf("annual rate must have at most 2 decimal places")
	ErrNoValidCustomers    = fmt.Errorf("no valid customers provided or found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
