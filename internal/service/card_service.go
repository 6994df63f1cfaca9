package service

import (
	"context"
	"log/slog"

	"card-checkout/internal/errors"
	"card-checkout/internal/gateway"
)

// CardTokenizer is the provider-facing port for exchanging raw card data
// for a payment token.
type CardTokenizer interface {
	TokenizeCard(ctx context.Context, card gateway.Card) (*gateway.CardToken, error)
}

type CardService struct {
	tokenizer CardTokenizer
	logger    *slog.Logger
}

func NewCardService(tokenizer CardTokenizer, logger *slog.Logger) *CardService {
	return &CardService{
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// ValidateCard tokenizes the card with the provider. Provider failures are
// surfaced as a validation error without leaking provider detail.
func (s *CardService) ValidateCard(ctx context.Context, card gateway.Card) (*gateway.CardToken, error) {
	if card.Number == "" || card.CVC == "" || card.ExpMonth == "" || card.ExpYear == "" {
		return nil, errors.NewAppError(errors.InvalidInput, "missing card fields")
	}

	token, err := s.tokenizer.TokenizeCard(ctx, card)
	if err != nil {
		s.logger.Error("Card tokenization failed", "error", err)
		return nil, errors.NewAppError(errors.CardValidationFailed, "failed to validate card")
	}

	return token, nil
}
