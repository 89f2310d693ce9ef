package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrInvalidCategory  = fmt.Errorf("invalid category")
	ErrMissingID        = fmt.Errorf("product id is required")
	ErrInvalidSortField = fmt.Errorf("invalid sort field")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")
	ErrNameRequired     = fmt.Errorf("product name is required")
	ErrInvalidID        = fmt.Errorf("invalid product id")
	ErrInvalidBody      = fmt.Errorf("invalid request body")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
