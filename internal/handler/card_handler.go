package handler

import (
	"encoding/json"
	"net/http"

	"card-checkout/internal/errors"
	"card-checkout/internal/gateway"
	"card-checkout/internal/service"
)

type CardHandler struct {
	cardService *service.CardService
}

func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

type ValidateCardRequest struct {
	Number     string `json:"number"`
	CVC        string `json:"cvc"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	CardHolder string `json:"card_holder"`
}

type ValidateCardResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

func (h *CardHandler) ValidateCard(w http.ResponseWriter, r *http.Request) {
	var req ValidateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	token, err := h.cardService.ValidateCard(r.Context(), gateway.Card{
		Number:     req.Number,
		CVC:        req.CVC,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
		CardHolder: req.CardHolder,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ValidateCardResponse{
		Status: token.Status,
		Token:  token.Data.ID,
	})
}
