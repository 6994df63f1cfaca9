package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ProductNotFound, http.StatusNotFound},
		{InsufficientStock, http.StatusConflict},
		{InvalidInput, http.StatusBadRequest},
		{InvalidAmount, http.StatusBadRequest},
		{CardValidationFailed, http.StatusBadRequest},
		{DuplicateProduct, http.StatusConflict},
		{InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, NewAppError(tt.code, "boom").HTTPStatus())
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := NewAppErrorf(InsufficientStock, "wanted %d, have %d", 3, 1).WithDetails("product p1")

	assert.Equal(t, "insufficient_stock: wanted 3, have 1", err.Error())
	assert.Equal(t, "product p1", err.Details)
}
