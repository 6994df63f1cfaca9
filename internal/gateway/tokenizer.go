package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// Card holds the raw card fields submitted for tokenization. They are sent
// straight to the provider and never persisted.
type Card struct {
	Number     string `json:"number"`
	CVC        string `json:"cvc"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	CardHolder string `json:"card_holder"`
}

type CardToken struct {
	Status string `json:"status"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// TokenizeCard exchanges raw card data for a provider-side token usable as
// the payment method in a charge request.
func (c *Client) TokenizeCard(ctx context.Context, card Card) (*CardToken, error) {
	var token CardToken
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(card).
		SetResult(&token).
		Post("/tokens/cards")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("tokenization returned status %d", resp.StatusCode())
	}

	return &token, nil
}
