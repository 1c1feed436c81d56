package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrEmptyOrderItems     = fmt.Errorf("order must contain at least one item")
	ErrInvalidQuantity     = fmt.Errorf("quantity must be at least 1")
	ErrNegativeStock       = fmt.Errorf("stock must not be negative")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidTaxPercent   = fmt.Errorf("tax percent must be between 0 and 100")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidStatus       = fmt.Errorf("unknown order status")
	ErrStatusNotAllowed    = fmt.Errorf("status transition is not allowed")
	ErrProductTitleEmpty   = fmt.Errorf("product title is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")

	// 401 Unauthorized
	ErrUnauthenticated = fmt.Errorf("authentication required")

	// 403 Forbidden
	ErrForbidden = fmt.Errorf("access to the resource is forbidden")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 409 Conflict
	ErrInsufficientStock = fmt.Errorf("insufficient stock")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
