package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card-checkout/internal/errors"
)

func TestGetProductRejectsEmptyID(t *testing.T) {
	svc := NewProductService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.GetProduct("")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.InvalidInput, appErr.Code)
}

func TestGetProductRejectsMalformedID(t *testing.T) {
	svc := NewProductService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.GetProduct("not-a-uuid")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.InvalidInput, appErr.Code)
}
