package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ProductNotFound      ErrorCode = "product_not_found"
	InsufficientStock    ErrorCode = "insufficient_stock"
	DuplicateProduct     ErrorCode = "duplicate_product"
	InvalidInput         ErrorCode = "invalid_input"
	InvalidAmount        ErrorCode = "invalid_amount"
	CardValidationFailed ErrorCode = "card_validation_failed"
	InternalError        ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// HTTPStatus maps an error code to the status the API should respond with.
// Provider and persistence failures collapse into a generic 500; gateway
// detail never reaches the client.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ProductNotFound:
		return http.StatusNotFound
	case InsufficientStock:
		return http.StatusConflict
	case InvalidInput, InvalidAmount, CardValidationFailed:
		return http.StatusBadRequest
	case DuplicateProduct:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrProductNotFound   = NewAppError(ProductNotFound, "product not found")
	ErrInsufficientStock = NewAppError(InsufficientStock, "insufficient stock for requested quantity")
	ErrDuplicateProduct  = NewAppError(DuplicateProduct, "product already exists")
	ErrInvalidQuantity   = NewAppError(InvalidAmount, "quantity must be positive")

	ErrCannotBeginTransaction = NewAppError(InternalError, "cannot begin transaction outside of a database connection")
)
