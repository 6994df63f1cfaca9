package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"card-checkout/internal/errors"
	"card-checkout/internal/gateway"
)

type mockTokenizer struct {
	mock.Mock
}

func (m *mockTokenizer) TokenizeCard(ctx context.Context, card gateway.Card) (*gateway.CardToken, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.CardToken), args.Error(1)
}

func validCard() gateway.Card {
	return gateway.Card{
		Number:     "4242424242424242",
		CVC:        "123",
		ExpMonth:   "12",
		ExpYear:    "29",
		CardHolder: "JANE DOE",
	}
}

func TestValidateCard(t *testing.T) {
	tokenizer := new(mockTokenizer)
	svc := NewCardService(tokenizer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	expected := &gateway.CardToken{Status: "CREATED"}
	expected.Data.ID = "tok_abc"
	tokenizer.On("TokenizeCard", mock.Anything, validCard()).Return(expected, nil)

	token, err := svc.ValidateCard(context.Background(), validCard())

	require.NoError(t, err)
	assert.Equal(t, "tok_abc", token.Data.ID)
}

func TestValidateCardMissingFields(t *testing.T) {
	tokenizer := new(mockTokenizer)
	svc := NewCardService(tokenizer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	card := validCard()
	card.CVC = ""

	_, err := svc.ValidateCard(context.Background(), card)

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.InvalidInput, appErr.Code)
	tokenizer.AssertNotCalled(t, "TokenizeCard", mock.Anything, mock.Anything)
}

func TestValidateCardProviderFailure(t *testing.T) {
	tokenizer := new(mockTokenizer)
	svc := NewCardService(tokenizer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tokenizer.On("TokenizeCard", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("tokenization returned status 422"))

	_, err := svc.ValidateCard(context.Background(), validCard())

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CardValidationFailed, appErr.Code)
	// The provider detail must not leak into the client-facing message.
	assert.NotContains(t, appErr.Message, "422")
}
